package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter]. cfg.ServerAddress may omit the scheme.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("http adapter created")
	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate posts to POST /api/tin/validate.
func (h *httpServerAdapter) Validate(ctx context.Context, req models.ValidationRequest) (models.ValidationResult, error) {
	var result models.ValidationResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/tin/validate")
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("%w: validate request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationResult{}, err
	}

	return result, nil
}

// ValidateBatch posts to POST /api/tin/validate/batch.
func (h *httpServerAdapter) ValidateBatch(ctx context.Context, items []models.ValidationRequest) (models.BatchResponse, error) {
	var batch models.BatchResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.BatchRequest{Items: items}).
		SetResult(&batch).
		Post("/api/tin/validate/batch")
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("%w: batch request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	return batch, nil
}

func (h *httpServerAdapter) Countries(ctx context.Context) ([]models.CountryInfo, error) {
	var countries models.CountriesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&countries).
		Get("/api/countries")
	if err != nil {
		return nil, fmt.Errorf("%w: countries request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return countries.Countries, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: version request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) Close() error {
	return nil
}
