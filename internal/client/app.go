// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-image-compress/internal/adapter"
	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
)

const healthyStatus = "success"

type App struct {
	adapter adapter.ServerAdapter

	inputPath  string
	outputPath string
	quality    int

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}

	return &App{
		adapter:    serverAdapter,
		inputPath:  cfg.InputPath,
		outputPath: cfg.OutputPath,
		quality:    cfg.Quality,
		logger:     logger,
	}, nil
}

// Run checks server health, uploads the input image and saves the result.
func (a *App) Run(ctx context.Context) error {
	health, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if health.Status != healthyStatus {
		return fmt.Errorf("%w: %q", ErrServerUnhealthy, health.Status)
	}
	a.logger.Debug().Str("message", health.Message).Msg("server is healthy")

	inputInfo, err := os.Stat(a.inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	download, err := a.adapter.Compress(ctx, a.inputPath, a.quality)
	if err != nil {
		return fmt.Errorf("compress %s: %w", a.inputPath, err)
	}
	defer download.Body.Close()

	outputPath := a.outputPath
	if outputPath == "" {
		outputPath = download.Filename
	}

	written, err := writeOutput(outputPath, download.Body)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("input", a.inputPath).
		Str("output", outputPath).
		Int64("original_size", inputInfo.Size()).
		Int64("compressed_size", written).
		Str("reduction", fmt.Sprintf("%.1f%%", reductionPercent(inputInfo.Size(), written))).
		Msg("image compressed")

	return nil
}

// writeOutput copies body into path. A partially written file is removed.
func writeOutput(path string, body io.Reader) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	written, err := io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return written, nil
}

func reductionPercent(original, compressed int64) float64 {
	if original <= 0 {
		return 0
	}
	return (1 - float64(compressed)/float64(original)) * 100
}
