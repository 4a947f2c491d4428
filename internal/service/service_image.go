// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-image-compress/internal/codec"
	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/models"
)

const tempFilePattern = "compress-*.jpg"

// downloadNamer suggests the attachment name of a compressed image.
type downloadNamer interface {
	Name() string
}

type imageService struct {
	tempDir   string
	maxPixels int64
	names     downloadNamer

	logger *logger.Logger
}

// NewImageService returns the codec-backed ImageService. Output files are
// created in cfg.Storage.TempDir, or os.TempDir() when it is empty. Images
// larger than cfg.App.MaxImagePixels are refused before decoding.
func NewImageService(cfg *config.StructuredConfig, names downloadNamer, logger *logger.Logger) ImageService {
	return &imageService{
		tempDir:   cfg.Storage.TempDir,
		maxPixels: cfg.App.MaxImagePixels,
		names:     names,
		logger:    logger,
	}
}

func (s *imageService) Compress(ctx context.Context, req models.CompressionRequest) (*models.CompressedImage, error) {
	log := logger.FromContext(ctx)

	src := &countingReader{r: req.Image.Content}
	img, format, err := codec.Decode(src, s.maxPixels)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.CreateTemp(s.tempDir, tempFilePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: create: %w", ErrTempFile, err)
	}

	handedOff := false
	defer func() {
		if !handedOff {
			discardTempFile(file, s.logger)
		}
	}()

	dst := &countingWriter{w: file}
	if err = codec.EncodeJPEG(dst, img, req.Quality); err != nil {
		return nil, err
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: rewind: %w", ErrTempFile, err)
	}

	originalSize := req.Image.Size
	if originalSize <= 0 {
		originalSize = src.n
	}

	compressed := models.NewCompressedImage(
		file,
		s.names.Name(),
		dst.n,
		originalSize,
		format,
	)
	handedOff = true

	log.Info().
		Str("source_format", format).
		Int("quality", req.Quality).
		Int64("original_size", compressed.OriginalSize).
		Int64("compressed_size", compressed.Size).
		Str("reduction", fmt.Sprintf("%.1f%%", compressed.ReductionPercent())).
		Msg("compression complete")

	return compressed, nil
}

func discardTempFile(file *os.File, log *logger.Logger) {
	name := file.Name()
	if err := file.Close(); err != nil {
		log.Warn().Err(err).Str("path", name).Msg("closing temp file")
	}
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", name).Msg("removing temp file")
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
