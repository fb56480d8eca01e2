package adapter

import "errors"

// Sentinels returned by both adapter implementations. HTTP statuses and
// gRPC codes are mapped onto them so callers never see transport details.
var (
	ErrBadRequest = errors.New("bad request")
	// ErrUnknownCountry is returned when the server has no validator for
	// the requested country.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrBatchTooLarge is returned when a batch exceeds the server limit.
	ErrBatchTooLarge       = errors.New("batch too large")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable is returned when the server cannot be reached.
	ErrUnavailable = errors.New("server unavailable")

	ErrUnsupportedProtocol = errors.New("unsupported protocol")
)
