// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/pkg/metrics"
	"github.com/linkforge/session-runtime/pkg/status"
)

// EndpointsInterface is implemented by every handler mounted on the agent router.
type EndpointsInterface interface {
	RegisterEndpoints(*chi.Mux)
}

// NewRouter builds the local agent API. Extra handlers, such as the
// federated login callback, are registered after the built-in ones.
func NewRouter(
	s status.SessionInterface,
	ws status.WorkspaceInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
	handlers ...EndpointsInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(s, ws, tracer, monitor, logger).RegisterEndpoints(router)

	for _, h := range handlers {
		if h != nil {
			h.RegisterEndpoints(router)
		}
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
