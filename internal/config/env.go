// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// envFileVar points at a dotenv file. When unset, ".env" in the working
	// directory is used if it exists.
	envFileVar     = "ENV_FILE"
	defaultEnvFile = ".env"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. cfg is either a [StructuredConfig] or a [ClientConfig]; fields
// are mapped via their `env` and `envPrefix` tags.
//
// Unset variables leave fields at their zero value so that later merge
// steps can tell "not configured" apart from an explicit setting.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseEnvFile populates cfg from the dotenv file named by ENV_FILE, with the
// same tags as parseEnv. It reports false when no file was read. A missing
// default ".env" is not an error; a missing explicit ENV_FILE is.
func parseEnvFile(cfg any) (bool, error) {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		path, explicit = defaultEnvFile, false
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return false, fmt.Errorf("error getting env file configs: %w", err)
	}

	return true, nil
}
