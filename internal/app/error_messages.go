// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains response messages shared by the HTTP and gRPC
// handlers, so both transports word the same failure the same way.
package app

const (
	// MsgInternalServerError replaces the message of any 5xx response and
	// of codes.Internal statuses.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for routes that do not exist.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when the route exists for other
	// methods only.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInvalidGzipData is returned when a gzip-encoded body cannot be
	// inflated.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgHealthy is the liveness probe body.
	MsgHealthy = "ok"
)
