// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthResponse is the fixed liveness payload returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed API request. Message values
// are stable and never carry raw library error text.
type ErrorResponse struct {
	Error string `json:"error"`
}
