// Package http implements the REST transport of the TIN server.
//
// Routes are wired on a chi router in routes.go. Cross-cutting concerns
// (trace ids, access logging with metrics, gzip, content-type checks and
// admin JWT auth) are middlewares in this package; request bodies are
// checked with go-playground/validator before they reach the service layer.
package http
