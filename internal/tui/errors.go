// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-tin-keeper/internal/adapter"
)

// ErrNilAdapter is returned by [New] when no server adapter is given.
var ErrNilAdapter = errors.New("server adapter is nil")

func humanizeServerError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "No network or the server is unavailable"
	case errors.Is(err, adapter.ErrUnknownCountry):
		return "The server has no validator for this country"
	case errors.Is(err, adapter.ErrBadRequest):
		return "The server rejected the request"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "The server failed to process the request"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
