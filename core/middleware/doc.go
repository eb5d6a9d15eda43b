// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a unique request id (RayID) for every request, stored in the
//     context locals and echoed in the response headers for tracing.
//
// Both are registered globally in cmd/start.go.
package middleware
