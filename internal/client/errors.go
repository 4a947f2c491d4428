// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrServerUnhealthy = errors.New("server reported unhealthy status")
	ErrWriteOutput     = errors.New("failed to write compressed image")
)
