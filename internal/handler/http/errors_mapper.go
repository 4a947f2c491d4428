// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-image-compress/internal/codec"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/MKhiriev/go-image-compress/internal/service"
	"github.com/MKhiriev/go-image-compress/internal/utils"
)

const (
	msgEndpointNotFound = "Endpoint not found"
	msgInternalError    = "Internal server error"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is ordered: the first sentinel matched by errors.Is wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrNoFileProvided, errorResponse{http.StatusBadRequest, "No file provided"}},
	{service.ErrNoFileSelected, errorResponse{http.StatusBadRequest, "No file selected"}},
	{service.ErrFileTooLarge, errorResponse{http.StatusBadRequest, "File is too large"}},
	{ErrMalformedForm, errorResponse{http.StatusBadRequest, "Malformed multipart form"}},
	{service.ErrInvalidQuality, errorResponse{http.StatusInternalServerError, "Quality must be an integer"}},
	{codec.ErrImageTooLarge, errorResponse{http.StatusInternalServerError, "Image dimensions are too large"}},
	{codec.ErrDecode, errorResponse{http.StatusInternalServerError, "Failed to decode image"}},
	{codec.ErrEncode, errorResponse{http.StatusInternalServerError, "Failed to encode image"}},
	{service.ErrTempFile, errorResponse{http.StatusInternalServerError, "Failed to store compressed image"}},
	{context.DeadlineExceeded, errorResponse{http.StatusGatewayTimeout, "Request timed out"}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, msgInternalError}
}

// writeError logs err with the request-scoped logger and writes its public
// message. The raw error never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgEndpointNotFound, http.StatusNotFound)
}
