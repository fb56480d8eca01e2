// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middlewares and request decoding. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnsupportedContentType is returned for a body that is not JSON.
	ErrUnsupportedContentType = errors.New("content type must be application/json")

	errRequestValidation = errors.New("request validation failed")
	errRequestTooLarge   = errors.New("request body too large")
)
