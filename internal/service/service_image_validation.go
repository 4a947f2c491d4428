// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-image-compress/models"
)

// ImageValidationService rejects malformed compression requests before
// they reach the codec. File checks come first, then the quality. Integer
// qualities outside 1..100 pass through for the encoder to clamp.
type ImageValidationService struct {
	inner ImageService
}

func NewImageValidationService() ImageServiceWrapper {
	return &ImageValidationService{}
}

func (v *ImageValidationService) Compress(ctx context.Context, req models.CompressionRequest) (*models.CompressedImage, error) {
	if req.Image.Content == nil {
		return nil, ErrNoFileProvided
	}

	if req.Image.Filename == "" {
		return nil, ErrNoFileSelected
	}

	if req.MalformedQuality != "" {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidQuality, req.MalformedQuality)
	}

	return v.inner.Compress(ctx, req)
}

func (v *ImageValidationService) Wrap(wrapped ImageService) ImageService {
	v.inner = wrapped
	return v
}
