package http

import (
	"net/http"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.AdminCredentials
	if err := h.decodeAndValidate(r, &creds); err != nil {
		writeServiceError(w, r, err, "bad login request")
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err, "admin login failed")
		return
	}

	resp := models.TokenResponse{Token: token.SignedString}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listLocaleCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.services.LocaleCodeService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing locale codes failed")
		return
	}

	utils.WriteJSON(w, models.LocaleCodesResponse{Codes: codes, Count: len(codes)}, http.StatusOK)
}

func (h *Handler) replaceLocaleCodes(w http.ResponseWriter, r *http.Request) {
	var req models.LocaleCodesRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err, "bad locale codes request")
		return
	}

	count, err := h.services.LocaleCodeService.Replace(r.Context(), req.Codes)
	if err != nil {
		writeServiceError(w, r, err, "replacing locale codes failed")
		return
	}

	admin, _ := utils.GetAdminLoginFromContext(r.Context())
	logger.FromRequest(r).Info().Str("admin", admin).Int("count", count).Msg("locale codes replaced")

	codes, err := h.services.LocaleCodeService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing locale codes failed")
		return
	}

	utils.WriteJSON(w, models.LocaleCodesResponse{Codes: codes, Count: len(codes)}, http.StatusOK)
}
