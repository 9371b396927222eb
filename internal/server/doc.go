// Package server wires and runs the transport server of the sync API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
