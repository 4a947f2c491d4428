// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-image-compress/internal/config"
	"github.com/MKhiriev/go-image-compress/internal/handler"
	"github.com/MKhiriev/go-image-compress/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers(t *testing.T, address string) *handler.Handlers {
	t.Helper()
	cfg := &config.StructuredConfig{
		App:    config.App{DefaultQuality: 80},
		Server: config.Server{HTTPAddress: address, MaxUploadSize: config.DefaultMaxUploadSize},
	}
	h, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	t.Run("http address creates server", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("no address", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{}, logger.Nop())
		require.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("no handlers", func(t *testing.T) {
		s, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		require.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	address := busy.Addr().String()
	s, err := NewServer(testHandlers(t, address), config.Server{HTTPAddress: address}, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	assert.Error(t, err)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := testHandlers(t, listener.Addr().String())
	srv := newHTTPServer(h.HTTP.Init(), config.Server{HTTPAddress: listener.Addr().String()}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- srv.serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"success","message":"Image compression API is running"}`, string(body))

	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err, "graceful shutdown must not be reported as an error")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after Shutdown")
	}
}
