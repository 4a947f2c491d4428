// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrDecode is returned when the input cannot be decoded by any
	// registered image format.
	ErrDecode = errors.New("failed to decode image")

	// ErrEncode is returned when the raster cannot be written as JPEG.
	ErrEncode = errors.New("failed to encode image")

	// ErrImageTooLarge is returned when the declared dimensions exceed the
	// pixel budget passed to Decode.
	ErrImageTooLarge = errors.New("image dimensions exceed the pixel limit")
)
