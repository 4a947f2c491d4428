// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"photo.png"})

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientTimeout, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Quality)
	assert.Empty(t, cfg.OutputPath)
	assert.Equal(t, "photo.png", cfg.InputPath)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "127.0.0.1:6000",
		"CLIENT_QUALITY":  "30",
		"CLIENT_OUTPUT":   "env.jpg",
	})

	cfg, err := GetClientConfig([]string{"-q", "70", "-timeout", "3s", "in.gif"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 70, cfg.Quality)
	assert.Equal(t, "env.jpg", cfg.OutputPath)
	assert.Equal(t, "in.gif", cfg.InputPath)
}

func TestGetClientConfig_MissingInput(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-q", "50"})

	assert.ErrorIs(t, err, ErrNoInputFile)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-a", "nowhere", "in.png"})

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetClientConfig_EnvFile(t *testing.T) {
	path := writeEnvFile(t, "ADAPTER_ADDRESS=127.0.0.1:6100\nCLIENT_QUALITY=45\n")
	setEnvVars(t, map[string]string{
		"ENV_FILE":       path,
		"CLIENT_QUALITY": "90",
	})

	cfg, err := GetClientConfig([]string{"in.png"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6100", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 90, cfg.Quality)
}
