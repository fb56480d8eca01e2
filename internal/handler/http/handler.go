package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
)

// maxBodyBytes caps every request body after decompression.
const maxBodyBytes = 8 << 20

type Handler struct {
	services *service.Services
	validate *validator.Validate
	traceIDs *utils.UUIDGenerator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) (*Handler, error) {
	validate, err := newRequestValidator()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validate,
		traceIDs: utils.NewUUIDGenerator(),
		metrics:  m,
		logger:   logger,
	}, nil
}
