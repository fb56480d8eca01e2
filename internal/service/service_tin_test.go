// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/validators"
	"github.com/MKhiriev/go-tin-keeper/models"
)

func newTestTINService(t *testing.T, cfg config.App) (*tinService, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewTINService(cfg, m, logger.Nop()).(*tinService), m
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestTINService_Validate_Valid(t *testing.T) {
	svc, m := newTestTINService(t, config.App{})

	res, err := svc.Validate(context.Background(), models.ValidationRequest{TIN: "DMLPRY77D15H501F", Country: "it"})

	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "IT", res.Country)
	assert.Equal(t, "*************01F", res.TIN, "TIN is masked in results")
	assert.Empty(t, res.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("IT", metrics.ResultValid)))
}

func TestTINService_Validate_Invalid(t *testing.T) {
	svc, m := newTestTINService(t, config.App{})

	res, err := svc.Validate(context.Background(), models.ValidationRequest{TIN: "12345678", Country: "DE"})

	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("DE", metrics.ResultInvalid)))
}

// TestTINService_Validate_UnknownCountry verifies that an unsupported country
// is an error matching both the service and the validators sentinel.
func TestTINService_Validate_UnknownCountry(t *testing.T) {
	svc, m := newTestTINService(t, config.App{})

	res, err := svc.Validate(context.Background(), models.ValidationRequest{TIN: "123", Country: "XX"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCountry)
	assert.ErrorIs(t, err, validators.ErrUnknownCountry)
	assert.False(t, res.Valid)
	assert.Equal(t, "XX", res.Country)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues(metrics.CountryUnknown, metrics.ResultError)))
}

// TestTINService_Validate_UnknownCountryLabelsBounded verifies that arbitrary
// country input never grows the validation counter beyond one series.
func TestTINService_Validate_UnknownCountryLabelsBounded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := NewTINService(config.App{}, m, logger.Nop())

	for i := range 200 {
		_, err := svc.Validate(context.Background(), models.ValidationRequest{TIN: "123", Country: fmt.Sprintf("Q%03d", i)})
		require.ErrorIs(t, err, ErrUnknownCountry)
	}
	_, err := svc.Validate(context.Background(), models.ValidationRequest{Country: "junk"})
	require.NoError(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "tin_validations_total"))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.Validations.WithLabelValues(metrics.CountryUnknown, metrics.ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues(metrics.CountryUnknown, metrics.ResultInvalid)))
}

// TestTINService_Validate_EmptyTIN verifies that an empty TIN is simply
// invalid, even for an unknown country.
func TestTINService_Validate_EmptyTIN(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{})

	for _, country := range []string{"DE", "XX"} {
		res, err := svc.Validate(context.Background(), models.ValidationRequest{Country: country})
		require.NoError(t, err, country)
		assert.False(t, res.Valid, country)
	}
}

// ─────────────────────────────────────────────
// ValidateBatch
// ─────────────────────────────────────────────

func TestTINService_ValidateBatch_OrderAndErrors(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{BatchWorkers: 2, MaxBatchSize: 10})

	reqs := []models.ValidationRequest{
		{TIN: "931736581", Country: "AT"},
		{TIN: "12345678", Country: "DE"},
		{TIN: "123", Country: "ZZ"},
		{TIN: "DMLPRY77D15H501F", Country: "IT"},
		{TIN: "", Country: "US"},
	}

	results, err := svc.ValidateBatch(context.Background(), reqs)

	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	assert.True(t, results[0].Valid)
	assert.Equal(t, "AT", results[0].Country)
	assert.False(t, results[1].Valid)
	assert.Contains(t, results[2].Error, "no validator for country")
	assert.Equal(t, "ZZ", results[2].Country)
	assert.True(t, results[3].Valid)
	assert.False(t, results[4].Valid)
	assert.Empty(t, results[4].Error)

	summary := models.NewBatchResponse(results)
	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 2, summary.Invalid)
	assert.Equal(t, 1, summary.Failed)
}

func TestTINService_ValidateBatch_Limits(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{MaxBatchSize: 2})

	_, err := svc.ValidateBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = svc.ValidateBatch(context.Background(), make([]models.ValidationRequest, 3))
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	results, err := svc.ValidateBatch(context.Background(), make([]models.ValidationRequest, 2))
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

// TestTINService_ValidateBatch_Unlimited verifies that a zero limit accepts
// any batch size.
func TestTINService_ValidateBatch_Unlimited(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{})

	reqs := make([]models.ValidationRequest, 0, 500)
	for i := range 500 {
		reqs = append(reqs, models.ValidationRequest{TIN: fmt.Sprintf("%09d", i), Country: "AT"})
	}

	results, err := svc.ValidateBatch(context.Background(), reqs)

	require.NoError(t, err)
	require.Len(t, results, 500)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("******%03d", i), r.TIN)
	}
}

func TestTINService_ValidateBatch_CancelledContext(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{BatchWorkers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ValidateBatch(ctx, []models.ValidationRequest{{TIN: "931736581", Country: "AT"}})

	assert.ErrorIs(t, err, context.Canceled)
}

// TestTINService_ValidateBatch_MatchesSingle verifies that batch results are
// identical to single validations.
func TestTINService_ValidateBatch_MatchesSingle(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{BatchWorkers: 4})

	reqs := []models.ValidationRequest{
		{TIN: "00012511119", Country: "BE"},
		{TIN: "7501010010", Country: "BG"},
		{TIN: "99652156X", Country: "CY"},
		{TIN: "131052-308T", Country: "FI"},
		{TIN: "1234567T", Country: "IE"},
		{TIN: "1234567W", Country: "IE"},
	}

	results, err := svc.ValidateBatch(context.Background(), reqs)
	require.NoError(t, err)

	for i, req := range reqs {
		single, err := svc.Validate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, single, results[i], req.Country)
	}
}

// ─────────────────────────────────────────────
// Countries
// ─────────────────────────────────────────────

func TestTINService_Countries(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{})

	countries := svc.Countries(context.Background())

	require.Len(t, countries, 23)
	assert.Equal(t, models.CountryInfo{Code: "AT", Name: validators.AT.Name()}, countries[0])
	assert.Equal(t, "US", countries[len(countries)-1].Code)
	for _, c := range countries {
		assert.NotEmpty(t, c.Name, c.Code)
	}
}

func TestNewTINService_DefaultWorkers(t *testing.T) {
	svc, _ := newTestTINService(t, config.App{BatchWorkers: 0})

	assert.Positive(t, svc.batchWorkers)
}
