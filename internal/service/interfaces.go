package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tin-keeper/models"
)

// TINService validates tax identification numbers.
type TINService interface {
	// Validate checks one TIN. An unknown country is an error wrapping
	// [ErrUnknownCountry]; an invalid TIN is not an error.
	Validate(ctx context.Context, req models.ValidationRequest) (models.ValidationResult, error)

	// ValidateBatch checks every item and returns results in request order.
	// Items with an unknown country carry the error in their Error field.
	ValidateBatch(ctx context.Context, reqs []models.ValidationRequest) ([]models.ValidationResult, error)

	// Countries lists the supported countries sorted by code.
	Countries(ctx context.Context) []models.CountryInfo
}

// LocaleCodeService manages the Italian locale-code set.
type LocaleCodeService interface {
	List(ctx context.Context) ([]models.LocaleCode, error)
	Replace(ctx context.Context, codes []models.LocaleCode) (int, error)
	Reload(ctx context.Context) error
}

// AuthService authenticates the administrator.
type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, creds models.AdminCredentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
