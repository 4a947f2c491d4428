// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoFileProvided = errors.New("no file provided")
	ErrNoFileSelected = errors.New("no file selected")
	ErrInvalidQuality = errors.New("invalid quality")
	ErrFileTooLarge   = errors.New("file is too large")

	// ErrTempFile covers every failure to create, write, or rewind the
	// per-request output file.
	ErrTempFile = errors.New("temp file failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
