// Package logger provides structured logging based on Zap.
//
// New builds a logger from the log section of the configuration: the level
// (debug, info, warn, error) and the encoding (json for production, console
// for local runs). The debug level switches to Zap's development preset.
//
// WithRayID attaches the request's ray id (set by the rayid middleware) so
// that every entry of one request can be correlated.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Checkout failed", zap.Error(err))
package logger
