// Package middleware holds the global and route-level Echo middleware.
//
// It covers request ids, the request-scoped logger, New Relic tracing,
// CORS, request logging, panic recovery and the global error handler
// that renders every failure as a response envelope.
package middleware
