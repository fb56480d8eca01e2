package http

import (
	"net/http"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
	"github.com/MKhiriev/go-tin-keeper/models"
)

func (h *Handler) validateTIN(w http.ResponseWriter, r *http.Request) {
	var req models.ValidationRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err, "bad validation request")
		return
	}

	result, err := h.services.TINService.Validate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "validation failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) validateBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err, "bad batch request")
		return
	}

	results, err := h.services.TINService.ValidateBatch(r.Context(), req.Items)
	if err != nil {
		writeServiceError(w, r, err, "batch validation failed")
		return
	}

	resp := models.NewBatchResponse(results)
	logger.FromRequest(r).Debug().
		Int("items", len(results)).
		Int("valid", resp.Valid).
		Int("failed", resp.Failed).
		Msg("batch validated")

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) countries(w http.ResponseWriter, r *http.Request) {
	countries := h.services.TINService.Countries(r.Context())
	utils.WriteJSON(w, models.CountriesResponse{Countries: countries}, http.StatusOK)
}
