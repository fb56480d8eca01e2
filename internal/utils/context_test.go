package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	got, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", got)

	_, ok = GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetAdminLoginFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminLoginCtxKey, "root")
	login, ok := GetAdminLoginFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "root", login)

	ctx = context.WithValue(context.Background(), AdminLoginCtxKey, "")
	_, ok = GetAdminLoginFromContext(ctx)
	assert.False(t, ok, "empty login is not an authenticated admin")
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
