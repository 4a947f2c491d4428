// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-image-compress/internal/utils"
	"github.com/MKhiriev/go-image-compress/models"
)

const (
	healthStatus  = "success"
	healthMessage = "Image compression API is running"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  healthStatus,
		Message: healthMessage,
	}, http.StatusOK)
}
