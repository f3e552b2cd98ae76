// Package logger builds the zap loggers used across the service.
//
// New turns the log section of the configuration into a logger: the debug
// level gets zap's development config, any other level the production config
// raised to that level. Unknown levels or formats are configuration errors.
// Every entry carries service=basemedia.
//
// WithRayID attaches the request id set by the rayid middleware, so all lines
// logged while serving one request can be correlated.
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "json"})
//	l := logger.WithRayID(log, c)
//	l.Error("Rescan failed", zap.Error(err))
package logger
