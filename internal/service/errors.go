package service

import (
	"errors"

	"github.com/MKhiriev/go-tin-keeper/internal/validators"
)

var (
	// ErrUnknownCountry is returned for a country code without a validator.
	// It is the same value as [validators.ErrUnknownCountry].
	ErrUnknownCountry = validators.ErrUnknownCountry

	// ErrEmptyBatch is returned for a batch without items.
	ErrEmptyBatch = errors.New("batch has no items")
	// ErrBatchTooLarge is returned for a batch above the configured limit.
	ErrBatchTooLarge = errors.New("batch is too large")

	// ErrInvalidLocaleCodes is returned when a replacement locale-code set is
	// empty or contains a malformed code.
	ErrInvalidLocaleCodes = errors.New("invalid locale codes")
	// ErrDuplicateLocaleCode is returned when a replacement set repeats a code.
	ErrDuplicateLocaleCode = errors.New("duplicate locale code")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")
	// ErrAdminDisabled is returned by admin operations when no administrator
	// is configured.
	ErrAdminDisabled = errors.New("admin endpoints are disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
