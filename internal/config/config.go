// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-image-compress/models"
)

// Defaults applied before any other source is merged.
const (
	DefaultHTTPAddress   = "localhost:5005"
	DefaultMaxUploadSize = int64(10 << 20) // 10 MiB

	// DefaultMaxImagePixels bounds width*height of a decoded upload. At
	// 8 bytes per pixel for 16-bit sources the raster stays under 1 GiB.
	DefaultMaxImagePixels = int64(89_478_485)
)

// StructuredConfig is the top-level configuration container for the
// compression server. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds image-processing settings and the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds the scratch location for per-request temp files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload limits for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultQuality is the JPEG quality used when a request omits the
	// "quality" form field.
	// Env: APP_DEFAULT_QUALITY
	DefaultQuality int `env:"DEFAULT_QUALITY"`

	// Version is the version string exposed via GET /api/version.
	// Falls back to the linker-injected build version when empty.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MaxImagePixels is the largest width*height accepted for decoding.
	// Larger images are rejected from their header alone.
	// Env: APP_MAX_IMAGE_PIXELS
	MaxImagePixels int64 `env:"MAX_IMAGE_PIXELS"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5005").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the multipart request body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Storage holds file-system settings for transient compression output.
type Storage struct {
	// TempDir is the directory where per-request JPEG files are written
	// before being streamed back. Empty means os.TempDir().
	// Env: STORAGE_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultQuality: models.DefaultQuality,
			MaxImagePixels: DefaultMaxImagePixels,
		},
		Server: Server{
			HTTPAddress:   DefaultHTTPAddress,
			MaxUploadSize: DefaultMaxUploadSize,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Dotenv file (ENV_FILE, or ./.env when present)
//  3. Environment variables
//  4. Command-line flags parsed from args
//  5. JSON file (path resolved from sources 2 to 4)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnvFile().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
