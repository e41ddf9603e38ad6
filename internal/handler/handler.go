// Package handler is the HTTP layer between the router and the services.
//
// Endpoints are typed functions wrapped by Handle, which binds and validates
// the payload, calls the service and writes the response envelope.
package handler
