package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

func adminToken(login string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(time.Unix(1_900_000_000, 0)),
		},
		SignedString: "signed." + login,
	}
}

// ── POST /api/admin/login ────────────────────────────────────────────────────

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)
	creds := models.AdminCredentials{Login: "admin", Password: "secret"}
	env.auth.EXPECT().Login(gomock.Any(), creds).Return(adminToken("admin"), nil)

	rec := env.do(t, http.MethodPost, "/api/admin/login", creds)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.TokenResponse](t, rec)
	assert.Equal(t, "signed.admin", resp.Token)
	assert.Equal(t, int64(1_900_000_000), resp.ExpiresAt)
	assert.Equal(t, "Bearer signed.admin", rec.Header().Get("Authorization"))
}

func TestAdminLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.AdminCredentials
		err        error
		wantStatus int
	}{
		{"missing password", models.AdminCredentials{Login: "admin"}, nil, http.StatusBadRequest},
		{"wrong credentials", models.AdminCredentials{Login: "admin", Password: "x"}, service.ErrWrongCredentials, http.StatusUnauthorized},
		{"disabled", models.AdminCredentials{Login: "admin", Password: "x"}, service.ErrAdminDisabled, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.err != nil {
				env.auth.EXPECT().Login(gomock.Any(), tt.creds).Return(models.Token{}, tt.err)
			}

			rec := env.do(t, http.MethodPost, "/api/admin/login", tt.creds)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ── /api/admin/locale-codes ──────────────────────────────────────────────────

func TestListLocaleCodes(t *testing.T) {
	env := newTestEnv(t)
	codes := []models.LocaleCode{{Code: "H501", Name: "Roma"}}

	env.auth.EXPECT().Enabled().Return(true)
	env.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(adminToken("admin"), nil)
	env.locales.EXPECT().List(gomock.Any()).Return(codes, nil)

	rec := env.do(t, http.MethodGet, "/api/admin/locale-codes", nil, "Authorization", "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.LocaleCodesResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "H501", resp.Codes[0].Code)
}

func TestReplaceLocaleCodes(t *testing.T) {
	env := newTestEnv(t)
	codes := []models.LocaleCode{{Code: "H501", Name: "Roma"}, {Code: "f205", Name: "Milano"}}

	env.auth.EXPECT().Enabled().Return(true)
	env.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(adminToken("admin"), nil)
	env.locales.EXPECT().
		Replace(gomock.Any(), codes).
		DoAndReturn(func(ctx context.Context, _ []models.LocaleCode) (int, error) {
			login, ok := utils.GetAdminLoginFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "admin", login)
			return 2, nil
		})
	env.locales.EXPECT().List(gomock.Any()).
		Return([]models.LocaleCode{{Code: "F205", Name: "Milano"}, {Code: "H501", Name: "Roma"}}, nil)

	rec := env.do(t, http.MethodPut, "/api/admin/locale-codes",
		models.LocaleCodesRequest{Codes: codes}, "Authorization", "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeBody[models.LocaleCodesResponse](t, rec).Count)
}

func TestReplaceLocaleCodes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		codes      []models.LocaleCode
		err        error
		wantStatus int
	}{
		{"malformed code", []models.LocaleCode{{Code: "ROMA"}}, nil, http.StatusBadRequest},
		{"empty set", nil, nil, http.StatusBadRequest},
		{"duplicate", []models.LocaleCode{{Code: "H501"}, {Code: "H501"}}, service.ErrDuplicateLocaleCode, http.StatusConflict},
		{"rejected by service", []models.LocaleCode{{Code: "H501"}}, service.ErrInvalidLocaleCodes, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.auth.EXPECT().Enabled().Return(true)
			env.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(adminToken("admin"), nil)
			if tt.err != nil {
				env.locales.EXPECT().Replace(gomock.Any(), tt.codes).Return(0, tt.err)
			}

			rec := env.do(t, http.MethodPut, "/api/admin/locale-codes",
				models.LocaleCodesRequest{Codes: tt.codes}, "Authorization", "Bearer good")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
