// Package http implements the HTTP transport of the reference sync server.
//
// It exposes the account and sync endpoints the client adapter talks to.
// Authentication, request tracing, access logging, compression and body
// signing are handled here before requests reach the service layer.
package http
