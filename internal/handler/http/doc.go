// Package http implements the HTTP transport of the wallet server.
//
// It exposes route wiring, request handlers and middleware for the command
// API under /api/wallet. Authentication, request tracing and access logging
// are handled here before requests reach the service layer. The caller's
// identifier always comes from the bearer token, never from the body.
package http
