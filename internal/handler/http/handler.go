// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/internal/service"
)

type Handler struct {
	services *service.Services

	defaultQuality int
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		defaultQuality: cfg.App.DefaultQuality,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
