// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return defaultConfig()
}

func TestStructuredConfig_Validate(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(tempFile, nil, 0o600))

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "existing temp dir", mutate: func(cfg *StructuredConfig) { cfg.Storage.TempDir = t.TempDir() }},
		{name: "quality lower bound", mutate: func(cfg *StructuredConfig) { cfg.App.DefaultQuality = 1 }},
		{name: "quality upper bound", mutate: func(cfg *StructuredConfig) { cfg.App.DefaultQuality = 100 }},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero upload size",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxUploadSize = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "quality zero",
			mutate:  func(cfg *StructuredConfig) { cfg.App.DefaultQuality = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "quality above 100",
			mutate:  func(cfg *StructuredConfig) { cfg.App.DefaultQuality = 101 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero pixel budget",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxImagePixels = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative pixel budget",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxImagePixels = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing temp dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.TempDir = "/definitely/not/here" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "temp dir is a file",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.TempDir = tempFile },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	base := func() *ClientConfig {
		return &ClientConfig{
			Adapter:   ClientAdapter{HTTPAddress: DefaultHTTPAddress, RequestTimeout: time.Second},
			InputPath: "photo.png",
		}
	}

	assert.NoError(t, base().validate())

	noAddr := base()
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noTimeout := base()
	noTimeout.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)

	badQuality := base()
	badQuality.Quality = 150
	assert.ErrorIs(t, badQuality.validate(), ErrInvalidAppConfigs)

	noInput := base()
	noInput.InputPath = ""
	assert.ErrorIs(t, noInput.validate(), ErrNoInputFile)
}
