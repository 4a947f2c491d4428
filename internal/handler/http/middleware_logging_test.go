// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/health",
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/health"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
				`"remote_addr":"192.0.2.1:1234"`,
			},
		},
		{
			name:   "POST 400",
			method: http.MethodPost,
			path:   "/api/image/compress",
			status: http.StatusBadRequest,
			body:   `{"error":"No file provided"}`,
			wantContains: []string{
				`"method":"POST"`,
				`"uri":"/api/image/compress"`,
				`"status":400`,
				`"size":28`,
			},
		},
		{
			name:   "404 without body",
			method: http.MethodGet,
			path:   "/missing?x=1",
			status: http.StatusNotFound,
			wantContains: []string{
				`"uri":"/missing?x=1"`,
				`"status":404`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rec := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusOK(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":5`)
}
