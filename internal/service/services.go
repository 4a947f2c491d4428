// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/internal/utils"
	"github.com/MKhiriev/go-image-compress/models"
)

type Services struct {
	ImageService   ImageService
	AppInfoService AppInfoService
}

// Download names look like "compressed-<uuid>.jpg".
const (
	downloadNamePrefix = "compressed-"
	downloadNameExt    = ".jpg"
)

// NewServices builds the service layer.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	imageService := NewImageValidationService().
		Wrap(NewImageService(cfg, utils.NewDownloadNamer(downloadNamePrefix, downloadNameExt), logger))

	return &Services{
		ImageService:   imageService,
		AppInfoService: appInfoService,
	}, nil
}
