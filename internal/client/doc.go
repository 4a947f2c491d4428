// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line upload client.
//
// It checks that the server is up, uploads one image for compression and
// writes the returned JPEG to disk.
package client
