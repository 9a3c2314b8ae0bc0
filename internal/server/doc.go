// Package server runs the HTTP transport of the auth service.
//
// It owns the listener lifecycle: startup, stop on SIGTERM, SIGINT or
// SIGQUIT, and graceful shutdown bounded by the configured timeout.
package server
