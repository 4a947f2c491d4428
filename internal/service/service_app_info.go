// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports cfg.Version when it is set and the linker-injected
// build version otherwise. It fails only when neither source has a value.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := cfg.Version, "config"
	if version == "" {
		version, source = buildInfo.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Str("source", source).Msg("reporting app version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
