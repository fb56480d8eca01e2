package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/models"
)

// TestAdminAuth verifies every rejection path of the admin middleware.
func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		header     string
		parseErr   error
		parses     bool
		wantStatus int
	}{
		{name: "admin disabled", enabled: false, header: "Bearer x", wantStatus: http.StatusNotFound},
		{name: "no header", enabled: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", enabled: true, header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "missing token", enabled: true, header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", enabled: true, header: "Bearer bad", parses: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{name: "lower-case scheme", enabled: true, header: "bearer good", parses: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.auth.EXPECT().Enabled().Return(tt.enabled)
			if tt.parses {
				env.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(adminToken("admin"), tt.parseErr)
			}
			if tt.wantStatus == http.StatusOK {
				env.locales.EXPECT().List(gomock.Any()).Return([]models.LocaleCode{}, nil)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rec := env.do(t, http.MethodGet, "/api/admin/locale-codes", nil, headers...)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
