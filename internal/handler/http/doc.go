// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the image compression
// service.
//
// It wires the chi router, the health, version and compression handlers,
// and the middleware chain (trace ids, access logging, panic recovery, CORS,
// response compression and request timeouts). Handlers translate multipart
// uploads into service calls and map service errors to stable JSON
// messages.
package http
