// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/internal/utils"
	"github.com/MKhiriev/go-image-compress/models"
)

const (
	healthPath   = "/api/health"
	versionPath  = "/api/version"
	compressPath = "/api/image/compress"

	defaultDownloadName = "compressed.jpg"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter]. The base
// URL is taken from adapterCfg.HTTPAddress; "http://" is assumed when no
// scheme is given.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Compress streams the response body back to the caller instead of
// buffering the whole JPEG.
func (h *httpServerAdapter) Compress(ctx context.Context, path string, quality int) (*models.CompressedDownload, error) {
	req := h.client.R().
		SetContext(ctx).
		SetFile("file", path).
		SetDoNotParseResponse(true)
	if quality != 0 {
		req.SetFormData(map[string]string{"quality": strconv.Itoa(quality)})
	}

	resp, err := req.Post(compressPath)
	if err != nil {
		return nil, fmt.Errorf("compress request: %w", err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		defer body.Close()
		errBody, readErr := io.ReadAll(io.LimitReader(body, maxErrorBody))
		if readErr != nil {
			h.logger.Debug().Err(readErr).Msg("reading error response body")
		}
		return nil, mapHTTPError(resp.StatusCode(), errBody)
	}

	return &models.CompressedDownload{
		Filename: downloadName(resp.Header().Get("Content-Disposition")),
		Size:     resp.RawResponse.ContentLength,
		Body:     body,
	}, nil
}

// downloadName returns the base name from a Content-Disposition header, or a
// fixed default when none is usable.
func downloadName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return defaultDownloadName
	}

	name := filepath.Base(params["filename"])
	if name == "." || name == "/" || name == ".." || name == "" {
		return defaultDownloadName
	}
	return name
}
