// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"os"
)

// DefaultQuality is the JPEG quality used when the caller omits the
// "quality" form field.
const DefaultQuality = 80

// JPEG quality bounds. The encoder clamps requested values into this range;
// configured defaults must already lie inside it.
const (
	MinQuality = 1
	MaxQuality = 100
)

// UploadedImage is the raw payload received in the multipart "file" field.
// It lives only for the duration of one request.
type UploadedImage struct {
	// Filename is the client-declared file name. It is never used to build
	// paths on disk.
	Filename string

	// Size is the declared payload size in bytes as reported by the
	// multipart header.
	Size int64

	// Content streams the uploaded bytes.
	Content io.Reader
}

// CompressionRequest pairs an uploaded image with the requested JPEG quality.
// Quality reaches the encoder unchanged.
type CompressionRequest struct {
	Image   UploadedImage
	Quality int

	// MalformedQuality holds the submitted "quality" value when it is not an
	// integer. Such a request fails once the file checks have passed.
	MalformedQuality string
}

// CompressedImage is the JPEG produced for a single request.
//
// The encoded bytes are held in a request-scoped temporary file. Callers
// must call Close once the body has been sent; Close releases the file
// descriptor and removes the file from disk.
type CompressedImage struct {
	// Filename is the suggested download name, e.g. "compressed-<id>.jpg".
	Filename string

	// Size is the number of encoded JPEG bytes.
	Size int64

	// OriginalSize is the number of bytes read from the upload.
	OriginalSize int64

	// SourceFormat is the format name reported by the decoder
	// ("png", "gif", "webp", ...).
	SourceFormat string

	file *os.File
}

// NewCompressedImage wraps an already written temp file. The file offset is
// expected to point at the start of the encoded data.
func NewCompressedImage(file *os.File, filename string, size, originalSize int64, sourceFormat string) *CompressedImage {
	return &CompressedImage{
		Filename:     filename,
		Size:         size,
		OriginalSize: originalSize,
		SourceFormat: sourceFormat,
		file:         file,
	}
}

// Read implements io.Reader over the encoded JPEG bytes.
func (c *CompressedImage) Read(p []byte) (int, error) {
	if c.file == nil {
		return 0, io.EOF
	}
	return c.file.Read(p)
}

// Path returns the location of the backing temp file, or "" once closed.
func (c *CompressedImage) Path() string {
	if c.file == nil {
		return ""
	}
	return c.file.Name()
}

// Close closes and removes the backing temp file. It is safe to call more
// than once.
func (c *CompressedImage) Close() error {
	if c.file == nil {
		return nil
	}

	name := c.file.Name()
	closeErr := c.file.Close()
	c.file = nil

	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return err
	}
	return closeErr
}

// ReductionPercent reports how much smaller the output is than the upload,
// as a percentage of the original size. It is negative when the JPEG grew.
func (c *CompressedImage) ReductionPercent() float64 {
	if c.OriginalSize <= 0 {
		return 0
	}
	return float64(c.OriginalSize-c.Size) / float64(c.OriginalSize) * 100
}
