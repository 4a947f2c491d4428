// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-image-compress/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if !validQuality(cfg.App.DefaultQuality) {
		return fmt.Errorf("%w: default quality %d is out of range", ErrInvalidAppConfigs, cfg.App.DefaultQuality)
	}
	if cfg.App.MaxImagePixels <= 0 {
		return fmt.Errorf("%w: max image pixels must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.TempDir != "" {
		info, err := os.Stat(cfg.Storage.TempDir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrInvalidStorageConfigs, cfg.Storage.TempDir)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Quality != 0 && !validQuality(cfg.Quality) {
		return fmt.Errorf("%w: quality %d is out of range", ErrInvalidAppConfigs, cfg.Quality)
	}

	if cfg.InputPath == "" {
		return ErrNoInputFile
	}

	return nil
}

func validQuality(q int) bool {
	return q >= models.MinQuality && q <= models.MaxQuality
}
