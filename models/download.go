// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// CompressedDownload is a compressed JPEG received from the server. Body
// streams the response and must be closed by the caller.
type CompressedDownload struct {
	// Filename is the name suggested by the server's Content-Disposition
	// header.
	Filename string

	// Size is the declared Content-Length, or -1 when the server did not
	// send one.
	Size int64

	Body io.ReadCloser
}
