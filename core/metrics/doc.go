// Package metrics exposes Prometheus metrics about base set discovery.
//
// A Recorder owns its collectors and registers them with the registry passed to
// New, so tests can use a fresh registry per case. Handler adapts promhttp to
// Fiber for the /metrics route.
package metrics
