// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading the multipart upload, before the
// request reaches the service layer. Callers can match against them with
// [errors.Is].
var (
	// ErrMalformedForm is returned when the request claims to be multipart
	// but its body cannot be parsed as such.
	ErrMalformedForm = errors.New("malformed multipart form")
)
