// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerCountingRecorder counts WriteHeader calls that reach it.
type headerCountingRecorder struct {
	*httptest.ResponseRecorder
	headerWrites int
}

func (r *headerCountingRecorder) WriteHeader(code int) {
	r.headerWrites++
	r.ResponseRecorder.WriteHeader(code)
}

func TestWithRequestTimeout_SetsDeadline(t *testing.T) {
	h := newTestHandler()
	h.requestTimeout = time.Minute

	var deadline time.Time
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	})

	start := time.Now()
	h.withRequestTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, start.Add(time.Minute), deadline, 5*time.Second)
}

func TestWithRequestTimeout_ExpiredDeadlineLeavesResponseToHandler(t *testing.T) {
	h := newTestHandler()
	h.requestTimeout = 10 * time.Millisecond

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		require.ErrorIs(t, r.Context().Err(), context.DeadlineExceeded)
		w.WriteHeader(http.StatusAccepted)
	})

	rec := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
	h.withRequestTimeout(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, rec.headerWrites)
}

func TestWithRequestTimeout_DeadlineErrorBecomes504(t *testing.T) {
	h := newTestHandler()
	h.requestTimeout = 10 * time.Millisecond

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		writeError(w, r, r.Context().Err())
	})

	rec := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
	h.withRequestTimeout(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assertErrorBody(t, rec.ResponseRecorder, http.StatusGatewayTimeout, "Request timed out")
	assert.Equal(t, 1, rec.headerWrites)
}
