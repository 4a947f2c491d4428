// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec is the image decode/encode delegate of the compression
// service.
//
// Decoding is format-agnostic: every format registered with the standard
// image package is accepted. Besides the standard JPEG, PNG and GIF
// decoders, this package registers BMP, TIFF and WEBP from
// golang.org/x/image. Encoding always produces baseline JPEG.
package codec
