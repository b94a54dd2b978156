// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// start-up invariants: the target must be an absolute http(s) URL with a
// host, and the listen address must be a host:port pair.
func (cfg *StructuredConfig) validate() error {
	if cfg.Proxy.Target == "" {
		return fmt.Errorf("%w: target is required", ErrInvalidTarget)
	}

	u, err := url.Parse(cfg.Proxy.Target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidTarget, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidTarget)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

// TargetURL returns the parsed origin URL. It must only be called on a
// validated config.
func (cfg *StructuredConfig) TargetURL() *url.URL {
	u, _ := url.Parse(cfg.Proxy.Target)
	return u
}
