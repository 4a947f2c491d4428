// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/internal/service"
	"github.com/MKhiriev/go-image-compress/models"
)

const (
	formFileField    = "file"
	formQualityField = "quality"

	jpegContentType = "image/jpeg"
)

func (h *Handler) compressImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := h.parseCompressionRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	compressed, err := h.services.ImageService.Compress(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer func() {
		if err := compressed.Close(); err != nil {
			log.Warn().Err(err).Msg("releasing compressed image")
		}
	}()

	w.Header().Set("Content-Type", jpegContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", compressed.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(compressed.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, compressed); err != nil {
		log.Error().Err(err).Str("filename", compressed.Filename).Msg("streaming compressed image")
	}
}

// parseCompressionRequest streams the multipart body part by part into a
// CompressionRequest. Part bodies are held in memory, bounded by the upload
// limit.
//
// Only a "file" part whose Content-Disposition carries a filename parameter
// is the upload; a plain "file" text field is skipped like any unknown
// field. For repeated fields the first one wins.
func (h *Handler) parseCompressionRequest(w http.ResponseWriter, r *http.Request) (models.CompressionRequest, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	reader, err := r.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return models.CompressionRequest{}, service.ErrNoFileProvided
		}
		return models.CompressionRequest{}, formError(err)
	}

	var (
		image         models.UploadedImage
		rawQuality    string
		qualityParsed bool
	)
	for {
		part, err := reader.NextPart()
		// A premature end of the body comes back wrapped; only the bare
		// sentinel marks the closing boundary.
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.CompressionRequest{}, formError(err)
		}

		switch part.FormName() {
		case formFileField:
			filename, isFile := partFilename(part)
			if !isFile || image.Content != nil {
				break
			}
			data, err := io.ReadAll(part)
			if err != nil {
				return models.CompressionRequest{}, formError(err)
			}
			image = models.UploadedImage{
				Filename: filename,
				Size:     int64(len(data)),
				Content:  bytes.NewReader(data),
			}
		case formQualityField:
			if qualityParsed {
				break
			}
			data, err := io.ReadAll(part)
			if err != nil {
				return models.CompressionRequest{}, formError(err)
			}
			rawQuality, qualityParsed = string(data), true
		}

		// Drain whatever was skipped so the next boundary can be found.
		if _, err := io.Copy(io.Discard, part); err != nil {
			return models.CompressionRequest{}, formError(err)
		}
	}

	quality, malformed := h.parseQuality(rawQuality)
	if malformed != "" {
		logger.FromRequest(r).Debug().Str("quality", malformed).Msg("quality is not an integer")
	}

	return models.CompressionRequest{
		Image:            image,
		Quality:          quality,
		MalformedQuality: malformed,
	}, nil
}

// partFilename reports the base file name of part and whether its
// Content-Disposition has a filename parameter at all. An empty file input
// sends filename="", which counts as a file with no name.
func partFilename(part *multipart.Part) (string, bool) {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false
	}
	if _, ok := params["filename"]; !ok {
		return "", false
	}
	return part.FileName(), true
}

// parseQuality returns the default quality when the field is absent or
// blank. A value that is not an integer comes back as malformed; integers
// are returned as sent.
func (h *Handler) parseQuality(raw string) (quality int, malformed string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.defaultQuality, ""
	}

	quality, err := strconv.Atoi(raw)
	if err != nil {
		return 0, raw
	}
	return quality, ""
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", service.ErrFileTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMalformedForm, err)
}
