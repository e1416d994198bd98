// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/session"
)

type anonymousSession struct{}

func (anonymousSession) Status() session.Status      { return session.StatusAnonymous }
func (anonymousSession) Principal() *types.Principal { return nil }
func (anonymousSession) ExpiresAt() time.Time        { return time.Time{} }

type emptyWorkspace struct{}

func (emptyWorkspace) Scope() types.Scope   { return types.Scope{} }
func (emptyWorkspace) Teams() []*types.Team { return nil }

type pingHandler struct{}

func (pingHandler) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRouter(t *testing.T) {
	router := NewRouter(
		anonymousSession{},
		emptyWorkspace{},
		[]string{"http://localhost:*"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("linkforge"),
		logging.NewNoopLogger(),
		pingHandler{},
	)

	tests := []struct {
		name     string
		method   string
		path     string
		origin   string
		expected int
		allowed  bool
	}{
		{name: "status", method: http.MethodGet, path: "/api/v0/status", expected: http.StatusOK},
		{name: "workspace while anonymous", method: http.MethodGet, path: "/api/v0/workspace", expected: http.StatusUnauthorized},
		{name: "metrics", method: http.MethodGet, path: "/api/v0/metrics", expected: http.StatusOK},
		{name: "extra handler", method: http.MethodGet, path: "/ping", expected: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/nope", expected: http.StatusNotFound},
		{name: "local origin", method: http.MethodGet, path: "/api/v0/status", origin: "http://localhost:3000", expected: http.StatusOK, allowed: true},
		{name: "foreign origin", method: http.MethodGet, path: "/api/v0/status", origin: "https://evil.example.com", expected: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			if test.origin != "" {
				req.Header.Set("Origin", test.origin)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != test.expected {
				t.Errorf("expected %d, got %d", test.expected, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin") != ""; got != test.allowed {
				t.Errorf("expected cors allowed %v, got header %q", test.allowed, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
