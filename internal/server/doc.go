// Package server runs the proxy's HTTP server.
//
// It binds the listener, serves until a stop signal arrives, shuts the
// server down gracefully and then runs the registered shutdown hooks (for
// example exporting the request log).
package server
