// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

func TestSubscriptionWebhook(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockSubscriberInterface)
		expectedStatus int
	}{
		{
			name: "plan applied",
			body: `{"plan":"PRO"}`,
			setupMocks: func(m *MockSubscriberInterface) {
				m.EXPECT().ApplySubscription(gomock.Any(), "PRO").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "malformed body",
			body:           `{"plan":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing plan",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no session",
			body: `{"plan":"PRO"}`,
			setupMocks: func(m *MockSubscriberInterface) {
				m.EXPECT().ApplySubscription(gomock.Any(), "PRO").Return(apierrors.ErrLoginRequired)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "store failure",
			body: `{"plan":"PRO"}`,
			setupMocks: func(m *MockSubscriberInterface) {
				m.EXPECT().ApplySubscription(gomock.Any(), "PRO").Return(errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSubscriber := NewMockSubscriberInterface(ctrl)
			if test.setupMocks != nil {
				test.setupMocks(mockSubscriber)
			}

			mux := chi.NewMux()
			NewAPI(mockSubscriber, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/subscription", strings.NewReader(test.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
