package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-tin-keeper/internal/app"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
)

// TraceIDMetadataKey carries the trace id, like X-Trace-ID over HTTP.
const TraceIDMetadataKey = "x-trace-id"

// UnaryInterceptor attaches a trace-scoped logger to ctx, turns panics into
// codes.Internal and logs one line per call.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 && utils.IsValidTraceID(values[0]) {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(context.WithValue(ctx, utils.TraceIDCtxKey, traceID))
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Str("method", info.FullMethod).Msg("gRPC handler panicked")
			resp, err = nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()
	}()

	return handler(ctx, req)
}
