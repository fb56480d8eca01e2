package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tin-keeper/models"
)

// ServerAdapter is the client side of the TIN server, over HTTP or gRPC.
type ServerAdapter interface {
	Validate(ctx context.Context, req models.ValidationRequest) (models.ValidationResult, error)
	ValidateBatch(ctx context.Context, items []models.ValidationRequest) (models.BatchResponse, error)
	Countries(ctx context.Context) ([]models.CountryInfo, error)
	Version(ctx context.Context) (models.VersionResponse, error)

	// Close releases the underlying connection.
	Close() error
}
