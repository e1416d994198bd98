// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/internal/version"
	"github.com/linkforge/session-runtime/pkg/session"
)

type Status struct {
	Status    string           `json:"status"`
	Principal *types.Principal `json:"principal,omitempty"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	Version   string           `json:"version"`
}

type Workspace struct {
	ScopeType string        `json:"scopeType"`
	ScopeID   string        `json:"scopeId"`
	Role      string        `json:"role,omitempty"`
	Teams     []*types.Team `json:"teams"`
}

// API exposes the session and workspace state to local tools. It never
// returns the credential itself.
type API struct {
	session   SessionInterface
	workspace WorkspaceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.status)
	mux.Get("/api/v0/workspace", a.workspaceState)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	s := Status{
		Status:  a.session.Status().String(),
		Version: version.Version,
	}
	if p := a.session.Principal(); p != nil {
		expiresAt := a.session.ExpiresAt()
		s.Principal = p
		s.ExpiresAt = &expiresAt
	}

	a.write(w, http.StatusOK, s)
}

func (a *API) workspaceState(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.workspaceState")
	defer span.End()

	if a.session.Status() != session.StatusAuthenticated {
		a.write(w, http.StatusUnauthorized, map[string]string{"message": "not logged in"})
		return
	}

	scope := a.workspace.Scope()
	scopeType, scopeID := scope.Params()

	ws := Workspace{
		ScopeType: scopeType,
		ScopeID:   scopeID,
		Teams:     a.workspace.Teams(),
	}
	if !scope.IsPersonal() && scope.Role.Valid() {
		ws.Role = scope.Role.String()
	}

	a.write(w, http.StatusOK, ws)
}

func (a *API) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(
	s SessionInterface,
	ws WorkspaceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.session = s
	a.workspace = ws

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
