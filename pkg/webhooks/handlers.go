// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/validation"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

const maxEventSize = 4 << 10

type API struct {
	subscriber SubscriberInterface
	validate   *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/subscription", a.subscription)
}

func (a *API) subscription(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.subscription")
	defer span.End()

	var event SubscriptionEvent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventSize)).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(event); err != nil {
		http.Error(w, apierrors.UserMessage(err), http.StatusBadRequest)
		return
	}

	err := a.subscriber.ApplySubscription(ctx, event.Plan)

	switch {
	case err == nil:
		a.logger.Infof("subscription plan changed to %s", event.Plan)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apierrors.ErrLoginRequired):
		http.Error(w, apierrors.UserMessage(err), http.StatusUnauthorized)
	case errors.Is(err, apierrors.ErrMissingField), errors.Is(err, apierrors.ErrValidation):
		http.Error(w, apierrors.UserMessage(err), http.StatusBadRequest)
	default:
		a.logger.Errorf("failed to apply subscription: %v", err)
		http.Error(w, apierrors.UserMessage(err), http.StatusInternalServerError)
	}
}

func NewAPI(subscriber SubscriberInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.subscriber = subscriber
	a.validate = validation.NewValidator()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
