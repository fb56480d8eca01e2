package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tin-keeper/models"
)

// LocaleCodeRepository persists the Italian locale-code (codice Belfiore)
// set used by the Italian TIN validator.
type LocaleCodeRepository interface {
	// ListLocaleCodes returns every stored code ordered by code.
	ListLocaleCodes(ctx context.Context) ([]models.LocaleCode, error)

	// ReplaceLocaleCodes atomically replaces the stored set with codes and
	// returns how many rows were written. Concurrent replacements are
	// serialized by the database; the last commit wins.
	ReplaceLocaleCodes(ctx context.Context, codes []models.LocaleCode) (int, error)

	// CountLocaleCodes returns the size of the stored set.
	CountLocaleCodes(ctx context.Context) (int, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
