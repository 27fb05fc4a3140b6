// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_, ADAPTER_, WORKERS_,
// LLM_, IMAGES_, CACHE_, S3_ and DEVICE_ variable groups.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
