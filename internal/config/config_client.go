// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultClientTimeout bounds a single client upload when no timeout is set.
const DefaultClientTimeout = 30 * time.Second

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the address of the compression server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the upload client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Quality is sent as the "quality" form field. Zero leaves it out so
	// the server default applies.
	// Env: CLIENT_QUALITY
	Quality int `env:"CLIENT_QUALITY"`
	// OutputPath is where the compressed JPEG is written. Empty means the
	// server-suggested file name in the current directory.
	// Env: CLIENT_OUTPUT
	OutputPath string `env:"CLIENT_OUTPUT"`
	// InputPath is the image to upload, taken from the first positional
	// argument.
	InputPath string
}

// GetClientConfig builds and validates the client configuration from
// defaults, the dotenv file, environment variables and args (last source
// wins).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-timeout request timeout (e.g., "30s")
//	-q JPEG quality (1-100)
//	-o output file path
//
// The first positional argument is the image to compress.
func GetClientConfig(args []string) (*ClientConfig, error) {
	fileCfg := &ClientConfig{}
	if _, err := parseEnvFile(fileCfg); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultClientTimeout,
		},
	}
	for _, src := range []*ClientConfig{fileCfg, envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverAddress NetAddress
	var timeout time.Duration
	var quality int
	var output string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Compression server address host:port")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 30s)")
	fs.IntVar(&quality, "q", 0, "JPEG quality (1-100)")
	fs.StringVar(&output, "o", "", "Output file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: timeout,
		},
		Quality:    quality,
		OutputPath: output,
		InputPath:  fs.Arg(0),
	}, nil
}
