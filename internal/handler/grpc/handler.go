// Package grpc exposes the TIN service over gRPC without generated code.
//
// The service "tin.v1.TINValidator" is declared by hand in [ServiceDesc] and
// messages are the JSON forms of the models package, carried by the "json"
// codec registered in this package. Clients select it with
// grpc.CallContentSubtype([CodecName]).
package grpc

import (
	"context"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (h *Handler) Validate(ctx context.Context, req *models.ValidationRequest) (*models.ValidationResult, error) {
	result, err := h.services.TINService.Validate(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &result, nil
}

func (h *Handler) ValidateBatch(ctx context.Context, req *models.BatchRequest) (*models.BatchResponse, error) {
	results, err := h.services.TINService.ValidateBatch(ctx, req.Items)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := models.NewBatchResponse(results)
	return &resp, nil
}

func (h *Handler) Countries(ctx context.Context, _ *CountriesRequest) (*models.CountriesResponse, error) {
	return &models.CountriesResponse{Countries: h.services.TINService.Countries(ctx)}, nil
}

func (h *Handler) Version(ctx context.Context, _ *VersionRequest) (*models.VersionResponse, error) {
	resp := h.services.AppInfoService.GetBuildInfo(ctx).Response()
	return &resp, nil
}
