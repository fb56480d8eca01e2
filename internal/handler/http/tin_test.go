package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tin-keeper/internal/app"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/models"
)

// ── POST /api/tin/validate ───────────────────────────────────────────────────

func TestValidateTIN(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(e *testEnv)
		wantStatus int
		wantValid  bool
	}{
		{
			name: "valid",
			body: models.ValidationRequest{TIN: "26954371827", Country: "DE"},
			setup: func(e *testEnv) {
				e.tin.EXPECT().
					Validate(gomock.Any(), models.ValidationRequest{TIN: "26954371827", Country: "DE"}).
					Return(models.ValidationResult{TIN: "********827", Country: "DE", Valid: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantValid:  true,
		},
		{
			name: "invalid is still 200",
			body: models.ValidationRequest{TIN: "65929970488", Country: "de"},
			setup: func(e *testEnv) {
				e.tin.EXPECT().Validate(gomock.Any(), gomock.Any()).
					Return(models.ValidationResult{Country: "DE", Valid: false}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty tin reaches the service",
			body: models.ValidationRequest{TIN: "", Country: "AT"},
			setup: func(e *testEnv) {
				e.tin.EXPECT().Validate(gomock.Any(), gomock.Any()).
					Return(models.ValidationResult{Country: "AT"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown country",
			body:       models.ValidationRequest{TIN: "123", Country: "XX"},
			wantStatus: http.StatusUnprocessableEntity,
			setup: func(e *testEnv) {
				e.tin.EXPECT().Validate(gomock.Any(), gomock.Any()).
					Return(models.ValidationResult{}, fmt.Errorf("%w %q", service.ErrUnknownCountry, "XX"))
			},
		},
		{
			name: "uk is reachable",
			body: models.ValidationRequest{TIN: "AB123456C", Country: "UK"},
			setup: func(e *testEnv) {
				e.tin.EXPECT().
					Validate(gomock.Any(), models.ValidationRequest{TIN: "AB123456C", Country: "UK"}).
					Return(models.ValidationResult{TIN: "******56C", Country: "UK", Valid: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantValid:  true,
		},
		{
			name:       "numeric country code",
			body:       models.ValidationRequest{TIN: "123", Country: "276"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "country with wrong shape",
			body:       models.ValidationRequest{TIN: "123", Country: "DEU"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing country",
			body:       models.ValidationRequest{TIN: "123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"tin":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.do(t, http.MethodPost, "/api/tin/validate", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if rec.Code == http.StatusOK {
				assert.Equal(t, tt.wantValid, decodeBody[models.ValidationResult](t, rec).Valid)
			} else {
				assert.NotEmpty(t, decodeBody[models.ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestValidateTIN_RequiresJSONContentType(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/tin/validate", `{"tin":"1","country":"DE"}`, "Content-Type", "text/plain")

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestValidateTIN_InternalErrorHidesDetails(t *testing.T) {
	env := newTestEnv(t)
	env.tin.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{}, fmt.Errorf("secret detail"))

	rec := env.do(t, http.MethodPost, "/api/tin/validate", models.ValidationRequest{TIN: "1", Country: "DE"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeBody[models.ErrorResponse](t, rec).Error)
}

// ── POST /api/tin/validate/batch ─────────────────────────────────────────────

func TestValidateBatch(t *testing.T) {
	env := newTestEnv(t)
	items := []models.ValidationRequest{
		{TIN: "26954371827", Country: "DE"},
		{TIN: "65929970488", Country: "DE"},
		{TIN: "1", Country: "XX"},
	}
	env.tin.EXPECT().ValidateBatch(gomock.Any(), items).Return([]models.ValidationResult{
		{Country: "DE", Valid: true},
		{Country: "DE"},
		{Country: "XX", Error: "unknown country"},
	}, nil)

	rec := env.do(t, http.MethodPost, "/api/tin/validate/batch", models.BatchRequest{Items: items})

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.BatchResponse](t, rec)
	assert.Len(t, resp.Results, 3)
	assert.Equal(t, 1, resp.Valid)
	assert.Equal(t, 1, resp.Invalid)
	assert.Equal(t, 1, resp.Failed)
}

func TestValidateBatch_Errors(t *testing.T) {
	t.Run("empty items", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tin/validate/batch", models.BatchRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad item", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/tin/validate/batch",
			models.BatchRequest{Items: []models.ValidationRequest{{TIN: "1", Country: "1"}}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[models.ErrorResponse](t, rec).Error, "items[0].country")
	})

	t.Run("too large", func(t *testing.T) {
		env := newTestEnv(t)
		env.tin.EXPECT().ValidateBatch(gomock.Any(), gomock.Any()).Return(nil, service.ErrBatchTooLarge)

		rec := env.do(t, http.MethodPost, "/api/tin/validate/batch",
			models.BatchRequest{Items: []models.ValidationRequest{{TIN: "1", Country: "DE"}}})

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

// ── GET /api/countries ───────────────────────────────────────────────────────

func TestCountries(t *testing.T) {
	env := newTestEnv(t)
	countries := []models.CountryInfo{{Code: "AT", Name: "Austria"}, {Code: "BE", Name: "Belgium"}}
	env.tin.EXPECT().Countries(gomock.Any()).Return(countries)

	rec := env.do(t, http.MethodGet, "/api/countries", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, countries, decodeBody[models.CountriesResponse](t, rec).Countries)
}
