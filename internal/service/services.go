package service

import (
	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/crypto"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/store"
	"github.com/MKhiriev/go-tin-keeper/models"
)

type Services struct {
	TINService        TINService
	LocaleCodeService LocaleCodeService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

// NewServices wires every service. repositories may be nil when the server
// runs without a database.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) *Services {
	var localeCodeRepository store.LocaleCodeRepository
	if repositories != nil {
		localeCodeRepository = repositories.LocaleCodeRepository
	}

	return &Services{
		TINService:        NewTINService(cfg.App, m, logger),
		LocaleCodeService: NewLocaleCodeService(localeCodeRepository, m, logger),
		AuthService:       NewAuthService(cfg.Auth, crypto.NewPasswordHasher(), logger),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
