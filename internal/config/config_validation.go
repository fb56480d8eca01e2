// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Fields that only matter
// when a feature is enabled (database, admin endpoints) are checked only
// then.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if cfg.App.BatchWorkers < 0 || cfg.App.MaxBatchSize < 0 {
		return fmt.Errorf("%w: batch limits must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Auth.AdminLogin != "" {
		if cfg.Auth.AdminPasswordHash == "" || cfg.Auth.TokenSignKey == "" {
			return fmt.Errorf("%w: admin login requires a password hash and a token sign key", ErrInvalidAuthConfigs)
		}
		if !strings.HasPrefix(cfg.Auth.AdminPasswordHash, "$argon2id$") {
			return fmt.Errorf("%w: admin password hash must be argon2id", ErrInvalidAuthConfigs)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Protocol {
	case ProtocolHTTP, ProtocolGRPC:
	default:
		return fmt.Errorf("%w: unsupported protocol %q", ErrInvalidAdapterConfigs, cfg.Protocol)
	}

	return nil
}
