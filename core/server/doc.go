// Package server holds the HTTP server configuration.
//
// The application entry point (cmd/start.go) owns the Fiber app itself; this
// package only defines the listen port, the API key and the request body limit.
package server
