// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Section prefixes come from the
// `envPrefix` tags of [StructuredConfig], so the batch limit is read from
// APP_MAX_BATCH_SIZE and the admin login from AUTH_ADMIN_LOGIN.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
