// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport server.
//
// RunServer blocks until a termination signal arrives or the listener fails.
type Server interface {
	RunServer()
	Shutdown()
}
