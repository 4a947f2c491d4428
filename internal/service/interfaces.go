// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-image-compress/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ImageService re-encodes uploaded images as JPEG.
type ImageService interface {
	// Compress decodes req.Image and encodes it as JPEG at req.Quality.
	// The returned image owns a temp file; callers must Close it.
	Compress(ctx context.Context, req models.CompressionRequest) (*models.CompressedImage, error)
}

// AppInfoService exposes static information about the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ImageServiceWrapper defines middleware composition for ImageService.
// Implementations wrap an existing ImageService to add behavior such as
// validation.
type ImageServiceWrapper interface {
	Wrap(ImageService) ImageService // returns a decorated ImageService applying additional behavior
}
