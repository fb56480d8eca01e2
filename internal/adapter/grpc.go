package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	tingrpc "github.com/MKhiriev/go-tin-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/models"
)

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCServerAdapter constructs the gRPC implementation of
// [ServerAdapter]. The connection is established lazily on the first call.
func NewGRPCServerAdapter(cfg config.ClientConfig, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(tingrpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(cfg.ServerAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	logger.Debug().Str("target", cfg.ServerAddress).Msg("grpc adapter created")
	return &grpcServerAdapter{conn: conn, timeout: cfg.RequestTimeout, logger: logger}, nil
}

// invoke calls method with the configured timeout and maps the status.
func (g *grpcServerAdapter) invoke(ctx context.Context, method string, in, out any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if err := g.conn.Invoke(ctx, method, in, out); err != nil {
		return mapGRPCError(err)
	}
	return nil
}

func (g *grpcServerAdapter) Validate(ctx context.Context, req models.ValidationRequest) (models.ValidationResult, error) {
	var result models.ValidationResult
	if err := g.invoke(ctx, tingrpc.ValidateMethod, &req, &result); err != nil {
		return models.ValidationResult{}, err
	}
	return result, nil
}

func (g *grpcServerAdapter) ValidateBatch(ctx context.Context, items []models.ValidationRequest) (models.BatchResponse, error) {
	var batch models.BatchResponse
	if err := g.invoke(ctx, tingrpc.ValidateBatchMethod, &models.BatchRequest{Items: items}, &batch); err != nil {
		return models.BatchResponse{}, err
	}
	return batch, nil
}

func (g *grpcServerAdapter) Countries(ctx context.Context) ([]models.CountryInfo, error) {
	var countries models.CountriesResponse
	if err := g.invoke(ctx, tingrpc.CountriesMethod, &tingrpc.CountriesRequest{}, &countries); err != nil {
		return nil, err
	}
	return countries.Countries, nil
}

func (g *grpcServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := g.invoke(ctx, tingrpc.VersionMethod, &tingrpc.VersionRequest{}, &version); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}
