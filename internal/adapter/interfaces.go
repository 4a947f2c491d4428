// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the image
// compression server.
//
// [ServerAdapter] hides the protocol from the client runtime. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrBadRequest] for 400,
// [ErrTooLarge] for rejected uploads). The server's JSON "error" message is
// kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-image-compress/models"
)

// ServerAdapter talks to a running compression server.
type ServerAdapter interface {
	// Health calls GET /api/health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version calls GET /api/version and returns the plain-text body.
	Version(ctx context.Context) (string, error)

	// Compress uploads the file at path to POST /api/image/compress. A zero
	// quality leaves the form field out so the server default applies.
	Compress(ctx context.Context, path string, quality int) (*models.CompressedDownload, error)
}
