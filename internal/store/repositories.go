package store

import "github.com/MKhiriev/go-tin-keeper/internal/logger"

// Repositories groups every repository built on one database connection.
type Repositories struct {
	LocaleCodeRepository LocaleCodeRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		LocaleCodeRepository: NewLocaleCodeRepository(db, log),
	}
}
