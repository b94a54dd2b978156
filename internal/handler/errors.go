// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is provided in the server configuration, so no transport handler can
	// be initialized. This is a fatal misconfiguration at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoProxyTarget is returned by NewHandlers when the configuration
	// carries no usable origin URL for the proxy.
	errNoProxyTarget = errors.New("no proxy target")
)
