// Package middleware provides HTTP middleware for the Arbor development
// server and any server embedding Arbor's server-side rendering.
//
// This package includes:
//   - Prometheus metrics middleware
//   - OpenTelemetry distributed tracing middleware
//
// Both middlewares follow the standard func(http.Handler) http.Handler
// shape and compose with chi or the plain net/http mux.
//
// # Prometheus Middleware
//
//	mux.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	mux.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry Middleware
//
//	mux.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	))
//
// The tracer uses the global OpenTelemetry tracer provider; configure it
// in main() before starting the server.
package middleware
