// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("endpoint not found")
	ErrTooLarge           = errors.New("file is too large")
	ErrServer             = errors.New("server error")
	ErrUnexpectedResponse = errors.New("unexpected response")
)
