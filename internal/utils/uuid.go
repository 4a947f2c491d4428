// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// DownloadNamer suggests attachment names of the form prefix + UUID + ext.
// Names carry a time-ordered UUIDv7, so they sort by creation time.
type DownloadNamer struct {
	prefix string
	ext    string

	newID func() (uuid.UUID, error)
}

func NewDownloadNamer(prefix, ext string) *DownloadNamer {
	return &DownloadNamer{
		prefix: prefix,
		ext:    ext,
		newID:  uuid.NewV7,
	}
}

// Name returns a fresh download name. A random UUIDv4 stands in when the v7
// source fails.
func (n *DownloadNamer) Name() string {
	id, err := n.newID()
	if err != nil {
		id = uuid.New()
	}

	return n.prefix + id.String() + n.ext
}
