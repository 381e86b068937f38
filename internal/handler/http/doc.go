// Package http implements the HTTP transport layer of the career-guide
// server.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Request tracing, access logging, request metrics, the request deadline and
// session authentication are handled in this package before requests are
// delegated to the service layer.
package http
