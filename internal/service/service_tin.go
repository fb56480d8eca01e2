// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/internal/validators"
	"github.com/MKhiriev/go-tin-keeper/models"
)

// tinService validates against the process-wide registry, so locale-code
// reloads take effect for the next request.
type tinService struct {
	registry     func() *validators.Registry
	batchWorkers int
	maxBatchSize int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewTINService constructs a [TINService]. A zero BatchWorkers falls back
// to the number of CPUs; a zero MaxBatchSize disables the limit.
func NewTINService(cfg config.App, m *metrics.Metrics, logger *logger.Logger) TINService {
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Debug().Int("batch_workers", workers).Int("max_batch_size", cfg.MaxBatchSize).Msg("creating TIN service")
	return &tinService{
		registry:     validators.Default,
		batchWorkers: workers,
		maxBatchSize: cfg.MaxBatchSize,
		metrics:      m,
		logger:       logger,
	}
}

func (s *tinService) Validate(ctx context.Context, req models.ValidationRequest) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	code, err := validators.ParseCountryCode(req.Country)
	result := models.ValidationResult{
		TIN:     utils.MaskTIN(req.TIN),
		Country: code.String(),
	}

	// An empty TIN is invalid for any country, supported or not.
	var valid bool
	if err == nil || req.TIN == "" {
		valid, err = s.registry().Validate(req.TIN, code)
	}
	if err != nil {
		s.metrics.ObserveValidation(countryLabel(code), metrics.ResultError, start)
		log.Debug().Err(err).Str("country", code.String()).Msg("validation rejected")
		return result, err
	}

	result.Valid = valid
	s.metrics.ObserveValidation(countryLabel(code), resultLabel(valid), start)
	log.Debug().
		Str("country", code.String()).
		Str("tin", result.TIN).
		Bool("valid", valid).
		Msg("tin validated")

	return result, nil
}

func (s *tinService) ValidateBatch(ctx context.Context, reqs []models.ValidationRequest) ([]models.ValidationResult, error) {
	log := logger.FromContext(ctx)

	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(reqs) > s.maxBatchSize {
		log.Warn().Int("size", len(reqs)).Int("limit", s.maxBatchSize).Msg("batch rejected")
		return nil, fmt.Errorf("%w: %d items, limit is %d", ErrBatchTooLarge, len(reqs), s.maxBatchSize)
	}
	s.metrics.ObserveBatch(len(reqs))

	results := make([]models.ValidationResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := s.Validate(gctx, req)
			if errors.Is(err, ErrUnknownCountry) {
				res.Error = err.Error()
			} else if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Err(err).Int("size", len(reqs)).Msg("batch validation aborted")
		return nil, err
	}

	return results, nil
}

func (s *tinService) Countries(ctx context.Context) []models.CountryInfo {
	codes := s.registry().Countries()

	countries := make([]models.CountryInfo, 0, len(codes))
	for _, code := range codes {
		countries = append(countries, models.CountryInfo{Code: code.String(), Name: code.Name()})
	}

	return countries
}

func resultLabel(valid bool) string {
	if valid {
		return metrics.ResultValid
	}
	return metrics.ResultInvalid
}

func countryLabel(code validators.CountryCode) string {
	if !code.IsKnown() {
		return metrics.CountryUnknown
	}
	return code.String()
}
