// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the image compression service.
//
// It owns the net/http server lifecycle: startup, signal handling, and
// graceful shutdown that lets in-flight compressions finish.
package server
