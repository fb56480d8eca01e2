package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
)

// adminAuth guards the admin routes with a bearer JWT issued by
// POST /api/admin/login.
//
// Responses:
//   - 404 when no administrator is configured, hiding the admin surface.
//   - 401 when the header is missing or malformed, or the token is rejected
//     by [service.AuthService.ParseToken].
//
// On success the admin login is stored under [utils.AdminLoginCtxKey].
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if !h.services.AuthService.Enabled() {
			utils.WriteError(w, service.ErrAdminDisabled.Error(), http.StatusNotFound)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("error occurred during parsing token")
			}
			utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminLoginCtxKey, token.Login())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
