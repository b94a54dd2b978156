// Package http implements the HTTP surface of the proxy.
//
// Requests under the /__bs namespace are answered locally: the captured
// client config, the loader shim, the request log and the synthesized build
// config. Every other request is recorded and forwarded to the origin, and
// HTML responses from the origin get the loader shim injected. Request
// tracing, access logging, response compression and entity tags are handled
// by middleware in this package before requests reach the service layer.
package http
