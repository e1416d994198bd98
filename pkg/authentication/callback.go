// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

const CallbackPath = "/auth/callback"

// completion outlives the browser request that triggered it
const completionTimeout = time.Minute

type CallbackResult struct {
	Principal *types.Principal
	Err       error
}

// CallbackHandler receives the provider redirect and completes the login.
type CallbackHandler struct {
	completer CompleterInterface
	results   chan CallbackResult

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (h *CallbackHandler) RegisterEndpoints(mux *chi.Mux) {
	mux.Get(CallbackPath, h.callback)
}

// Results yields the outcome of the first callback not yet consumed.
func (h *CallbackHandler) Results() <-chan CallbackResult {
	return h.results
}

func (h *CallbackHandler) callback(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "authentication.CallbackHandler.callback")
	defer span.End()

	q := r.URL.Query()

	if providerErr := q.Get("error"); providerErr != "" {
		err := apierrors.New(apierrors.KindRejected, fmt.Sprintf("provider returned %s: %s", providerErr, q.Get("error_description")))
		h.deliver(CallbackResult{Err: err})
		http.Error(w, "Login was cancelled or denied. You can close this window.", http.StatusBadRequest)
		return
	}

	code, state := q.Get("code"), q.Get("state")
	if code == "" || state == "" {
		http.Error(w, "Missing code or state.", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), completionTimeout)
	defer cancel()

	principal, err := h.completer.CompleteFederatedLogin(ctx, code, state)
	h.deliver(CallbackResult{Principal: principal, Err: err})

	if err != nil {
		h.logger.Errorf("federated login failed: %v", err)
		http.Error(w, apierrors.UserMessage(err), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Logged in as %s. You can close this window.\n", principal.Email)
}

func (h *CallbackHandler) deliver(res CallbackResult) {
	select {
	case h.results <- res:
	default:
		h.logger.Debugf("dropping federated login result, previous one not consumed")
	}
}

func NewCallbackHandler(completer CompleterInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CallbackHandler {
	h := new(CallbackHandler)

	h.completer = completer
	h.results = make(chan CallbackResult, 1)

	h.tracer = tracer
	h.monitor = monitor
	h.logger = logger

	return h
}
