package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tin-keeper/internal/app"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/store"
	"github.com/MKhiriev/go-tin-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:            http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	errRequestValidation:      http.StatusBadRequest,
	errRequestTooLarge:        http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmptyBatch:          http.StatusBadRequest,
	service.ErrInvalidLocaleCodes:  http.StatusBadRequest,
	service.ErrUnknownCountry:      http.StatusUnprocessableEntity,
	service.ErrBatchTooLarge:       http.StatusRequestEntityTooLarge,
	service.ErrDuplicateLocaleCode: http.StatusConflict,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminDisabled:           http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Messages of
// 5xx responses are replaced with a generic one.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		message = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
