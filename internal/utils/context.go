// Package utils holds small helpers shared by the transport, service and
// client layers: context keys, JSON responses, the resty client, trace ids,
// admin JWTs, argon2id password hashes and TIN masking.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so they cannot collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey holds the request trace id set by the trace middleware.
var TraceIDCtxKey = contextKey("traceID")

// AdminLoginCtxKey holds the login of an authenticated administrator.
var AdminLoginCtxKey = contextKey("adminLogin")

// GetTraceIDFromContext returns the trace id stored in ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// GetAdminLoginFromContext returns the administrator login stored in ctx.
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}
