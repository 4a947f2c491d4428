// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-image-compress/models"
)

// fileTooLargeMessage is what the server answers, with 400, for an upload
// over its limit.
const fileTooLargeMessage = "File is too large"

func mapHTTPError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(body)
	if message == "" {
		message = http.StatusText(statusCode)
	}

	switch {
	case statusCode == http.StatusRequestEntityTooLarge,
		statusCode == http.StatusBadRequest && message == fileTooLargeMessage:
		return fmt.Errorf("%w: %s", ErrTooLarge, message)
	case statusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case statusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %d %s", ErrServer, statusCode, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, statusCode, message)
	}
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the trimmed body text.
func errorMessage(body []byte) string {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(body))
}
