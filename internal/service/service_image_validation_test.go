// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-image-compress/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingImageService captures the request that passed validation.
type recordingImageService struct {
	calls int
	last  models.CompressionRequest
}

func (r *recordingImageService) Compress(_ context.Context, req models.CompressionRequest) (*models.CompressedImage, error) {
	r.calls++
	r.last = req
	return &models.CompressedImage{Filename: "compressed-x.jpg"}, nil
}

func validRequest() models.CompressionRequest {
	return models.CompressionRequest{
		Image:   models.UploadedImage{Filename: "a.png", Content: bytes.NewReader([]byte{1})},
		Quality: models.DefaultQuality,
	}
}

func TestImageValidationService_Compress(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *models.CompressionRequest)
		wantErr error
	}{
		{name: "valid request", mutate: func(*models.CompressionRequest) {}},
		{name: "quality 1", mutate: func(req *models.CompressionRequest) { req.Quality = 1 }},
		{name: "quality 100", mutate: func(req *models.CompressionRequest) { req.Quality = 100 }},
		{name: "quality zero is left to the encoder", mutate: func(req *models.CompressionRequest) { req.Quality = 0 }},
		{name: "negative quality is left to the encoder", mutate: func(req *models.CompressionRequest) { req.Quality = -5 }},
		{name: "quality above 100 is left to the encoder", mutate: func(req *models.CompressionRequest) { req.Quality = 150 }},
		{
			name:    "no content",
			mutate:  func(req *models.CompressionRequest) { req.Image.Content = nil },
			wantErr: ErrNoFileProvided,
		},
		{
			name:    "empty filename",
			mutate:  func(req *models.CompressionRequest) { req.Image.Filename = "" },
			wantErr: ErrNoFileSelected,
		},
		{
			name:    "quality not an integer",
			mutate:  func(req *models.CompressionRequest) { req.MalformedQuality = "abc" },
			wantErr: ErrInvalidQuality,
		},
		{
			name: "missing file wins over bad quality",
			mutate: func(req *models.CompressionRequest) {
				req.Image.Content = nil
				req.MalformedQuality = "abc"
			},
			wantErr: ErrNoFileProvided,
		},
		{
			name: "empty filename wins over bad quality",
			mutate: func(req *models.CompressionRequest) {
				req.Image.Filename = ""
				req.MalformedQuality = "abc"
			},
			wantErr: ErrNoFileSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &recordingImageService{}
			svc := NewImageValidationService().Wrap(inner)

			req := validRequest()
			tt.mutate(&req)

			out, err := svc.Compress(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				assert.Zero(t, inner.calls, "invalid requests must not reach the codec")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, 1, inner.calls)
			assert.Equal(t, req.Quality, inner.last.Quality)
		})
	}
}
