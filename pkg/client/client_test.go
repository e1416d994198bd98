// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

type recordedRequest struct {
	authorization string
	requestID     string
}

// backend replies with the queued statuses in order, repeating the last one.
type backend struct {
	mu       sync.Mutex
	statuses []int
	bodies   []string
	requests []recordedRequest
	onServe  func(n int)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	n := len(b.requests)
	b.requests = append(b.requests, recordedRequest{
		authorization: r.Header.Get("Authorization"),
		requestID:     r.Header.Get(requestIDHeader),
	})

	status := b.statuses[min(n, len(b.statuses)-1)]
	body := `{"success":true}`
	if len(b.bodies) > 0 {
		body = b.bodies[min(n, len(b.bodies)-1)]
	}
	onServe := b.onServe
	b.mu.Unlock()

	if onServe != nil {
		onServe(n)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (b *backend) calls() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]recordedRequest(nil), b.requests...)
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delays = append(s.delays, d)
	return nil
}

func newTestClient(t *testing.T, url string, store CredentialReaderInterface, sleeper *sleepRecorder) *Client {
	t.Helper()

	c, err := NewClient(
		Config{BaseURL: url, BackoffInitial: 2 * time.Second, MaxAttempts: 3, Sleep: sleeper.sleep},
		store,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("linkforge"),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func newStore(t *testing.T, token string) *credentials.MemoryStore {
	t.Helper()

	s := credentials.NewMemoryStore()
	if token != "" {
		if err := s.Save(context.Background(), &types.Credential{Token: token, ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return s
}

func TestDoRetriesServiceUnavailable(t *testing.T) {
	b := &backend{statuses: []int{http.StatusServiceUnavailable}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	sleeper := new(sleepRecorder)
	c := newTestClient(t, srv.URL, newStore(t, "tok"), sleeper)

	err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

	if !errors.Is(err, apierrors.ErrServiceUnavailable) {
		t.Fatalf("expected ServiceUnavailable, got %v", err)
	}

	calls := b.calls()
	if len(calls) != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", len(calls))
	}

	if len(sleeper.delays) != 2 {
		t.Fatalf("expected 2 backoff delays, got %v", sleeper.delays)
	}
	if sleeper.delays[0] < 2*time.Second || sleeper.delays[0] >= 3*time.Second {
		t.Errorf("expected first delay of about 2s, got %v", sleeper.delays[0])
	}
	if sleeper.delays[1] < 4*time.Second || sleeper.delays[1] <= sleeper.delays[0] {
		t.Errorf("expected increasing delays, got %v", sleeper.delays)
	}

	for _, call := range calls {
		if call.requestID == "" || call.requestID != calls[0].requestID {
			t.Errorf("expected every attempt to carry the same request id, got %q and %q", call.requestID, calls[0].requestID)
		}
	}
}

func TestDoRecoversAfterServiceUnavailable(t *testing.T) {
	b := &backend{
		statuses: []int{http.StatusServiceUnavailable, http.StatusOK},
		bodies:   []string{`{"success":false}`, `{"success":true,"team":{"id":"t1","name":"Acme"}}`},
	}
	srv := httptest.NewServer(b)
	defer srv.Close()

	sleeper := new(sleepRecorder)
	c := newTestClient(t, srv.URL, newStore(t, "tok"), sleeper)

	env := new(Envelope)
	if err := c.Do(context.Background(), &Request{Method: http.MethodPost, Path: "/teams", Body: map[string]string{"name": "Acme"}}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Team == nil || env.Team.Name != "Acme" {
		t.Errorf("unexpected envelope %+v", env)
	}
	if len(b.calls()) != 2 || len(sleeper.delays) != 1 {
		t.Errorf("expected 2 attempts and 1 delay, got %d and %v", len(b.calls()), sleeper.delays)
	}
}

func TestDoNetworkFailureIsNotRetried(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	sleeper := new(sleepRecorder)
	c := newTestClient(t, url, newStore(t, "tok"), sleeper)

	err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

	if !errors.Is(err, apierrors.ErrNetworkUnreachable) {
		t.Fatalf("expected NetworkUnreachable, got %v", err)
	}
	if len(sleeper.delays) != 0 {
		t.Errorf("expected no retry on network failure, got delays %v", sleeper.delays)
	}
}

func TestDoRefreshesOnceAndReplays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := &backend{statuses: []int{http.StatusUnauthorized, http.StatusOK}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	store := newStore(t, "old")
	c := newTestClient(t, srv.URL, store, new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(1).DoAndReturn(
		func(ctx context.Context) error {
			return store.Save(ctx, &types.Credential{Token: "new", ExpiresAt: time.Now().Add(time.Hour)})
		},
	)
	c.RegisterSessionHandler(session)

	if err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := b.calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(calls))
	}
	if calls[0].authorization != "Bearer old" || calls[1].authorization != "Bearer new" {
		t.Errorf("expected replay with the refreshed credential, got %q then %q", calls[0].authorization, calls[1].authorization)
	}
}

func TestDoUnauthorizedTwiceExpiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := &backend{statuses: []int{http.StatusUnauthorized}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	store := newStore(t, "old")
	c := newTestClient(t, srv.URL, store, new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(1).DoAndReturn(
		func(ctx context.Context) error {
			return store.Save(ctx, &types.Credential{Token: "new"})
		},
	)
	session.EXPECT().Expire(gomock.Any(), uint64(1), gomock.Any()).Times(1)
	c.RegisterSessionHandler(session)

	err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

	if !errors.Is(err, apierrors.ErrAuthExpiredUnrecoverable) {
		t.Fatalf("expected AuthExpiredUnrecoverable, got %v", err)
	}
	if len(b.calls()) != 2 {
		t.Errorf("expected no third attempt, got %d", len(b.calls()))
	}
}

func TestDoForbiddenAfterRefreshIsPermissionDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := &backend{
		statuses: []int{http.StatusForbidden},
		bodies:   []string{`{"success":false,"message":"admins only"}`},
	}
	srv := httptest.NewServer(b)
	defer srv.Close()

	store := newStore(t, "old")
	c := newTestClient(t, srv.URL, store, new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(1).DoAndReturn(
		func(ctx context.Context) error {
			return store.Save(ctx, &types.Credential{Token: "new"})
		},
	)
	session.EXPECT().Expire(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	c.RegisterSessionHandler(session)

	err := c.Do(context.Background(), &Request{Method: http.MethodDelete, Path: "/teams/t1"}, nil)

	if !errors.Is(err, apierrors.ErrPermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if apierrors.UserMessage(err) != "admins only" {
		t.Errorf("expected backend message, got %q", apierrors.UserMessage(err))
	}
}

func TestDoRefreshFailures(t *testing.T) {
	tests := []struct {
		name       string
		refreshErr error
		expected   error
	}{
		{
			name:       "transient failure surfaces as is",
			refreshErr: apierrors.New(apierrors.KindServiceUnavailable, "down"),
			expected:   apierrors.ErrServiceUnavailable,
		},
		{
			name:       "network failure surfaces as is",
			refreshErr: apierrors.New(apierrors.KindNetworkUnreachable, "offline"),
			expected:   apierrors.ErrNetworkUnreachable,
		},
		{
			name:       "rejection is unrecoverable",
			refreshErr: apierrors.New(apierrors.KindAuthExpiredUnrecoverable, "revoked"),
			expected:   apierrors.ErrAuthExpiredUnrecoverable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := &backend{statuses: []int{http.StatusUnauthorized}}
			srv := httptest.NewServer(b)
			defer srv.Close()

			c := newTestClient(t, srv.URL, newStore(t, "old"), new(sleepRecorder))

			session := NewMockSessionHandlerInterface(ctrl)
			session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
			session.EXPECT().RefreshCredential(gomock.Any()).Times(1).Return(test.refreshErr)
			session.EXPECT().Expire(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			c.RegisterSessionHandler(session)

			err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
			if len(b.calls()) != 1 {
				t.Errorf("expected a single attempt, got %d", len(b.calls()))
			}
		})
	}
}

func TestDoReplaysWhenCredentialChangedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore(t, "old")

	b := &backend{statuses: []int{http.StatusUnauthorized, http.StatusOK}}
	// another caller refreshes while the first attempt is in flight
	b.onServe = func(n int) {
		if n == 0 {
			_ = store.Save(context.Background(), &types.Credential{Token: "new"})
		}
	}
	srv := httptest.NewServer(b)
	defer srv.Close()

	c := newTestClient(t, srv.URL, store, new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(0)
	c.RegisterSessionHandler(session)

	if err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := b.calls()
	if len(calls) != 2 || calls[1].authorization != "Bearer new" {
		t.Errorf("expected replay with the new credential, got %+v", calls)
	}
}

func TestDoDropsRequestWhenSessionChanges(t *testing.T) {
	tests := []struct {
		name            string
		switchOnRefresh bool
		refreshCalls    int
		expectedCalls   int
	}{
		{
			name:          "login as another user during the attempt",
			refreshCalls:  0,
			expectedCalls: 1,
		},
		{
			name:            "refresh joined after a logout and login",
			switchOnRefresh: true,
			refreshCalls:    1,
			expectedCalls:   1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := newStore(t, "old")
			var gen atomic.Uint64
			gen.Store(1)

			switchSession := func() {
				gen.Add(2)
				_ = store.Save(context.Background(), &types.Credential{Token: "other-user"})
			}

			b := &backend{statuses: []int{http.StatusUnauthorized, http.StatusOK}}
			if !test.switchOnRefresh {
				b.onServe = func(n int) {
					if n == 0 {
						switchSession()
					}
				}
			}
			srv := httptest.NewServer(b)
			defer srv.Close()

			c := newTestClient(t, srv.URL, store, new(sleepRecorder))

			session := NewMockSessionHandlerInterface(ctrl)
			session.EXPECT().Generation().DoAndReturn(gen.Load).AnyTimes()
			session.EXPECT().RefreshCredential(gomock.Any()).Times(test.refreshCalls).DoAndReturn(
				func(context.Context) error {
					switchSession()
					return nil
				},
			)
			session.EXPECT().Expire(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			c.RegisterSessionHandler(session)

			err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

			if !errors.Is(err, ErrSessionChanged) {
				t.Fatalf("expected ErrSessionChanged, got %v", err)
			}

			calls := b.calls()
			if len(calls) != test.expectedCalls {
				t.Fatalf("expected %d attempts, got %d", test.expectedCalls, len(calls))
			}
			for _, call := range calls {
				if call.authorization == "Bearer other-user" {
					t.Errorf("request was sent with the next session's credential")
				}
			}
		})
	}
}

func TestDoUnauthorizedReplayExpiresOwnGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := &backend{statuses: []int{http.StatusUnauthorized}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	store := newStore(t, "old")
	c := newTestClient(t, srv.URL, store, new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(7)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(1).DoAndReturn(
		func(ctx context.Context) error {
			return store.Save(ctx, &types.Credential{Token: "new"})
		},
	)
	session.EXPECT().Expire(gomock.Any(), uint64(7), gomock.Any()).Times(1)
	c.RegisterSessionHandler(session)

	err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

	if !errors.Is(err, apierrors.ErrAuthExpiredUnrecoverable) {
		t.Fatalf("expected AuthExpiredUnrecoverable, got %v", err)
	}
}

func TestDoNoRefreshRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := &backend{statuses: []int{http.StatusUnauthorized}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	c := newTestClient(t, srv.URL, newStore(t, "tok"), new(sleepRecorder))

	session := NewMockSessionHandlerInterface(ctrl)
	session.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	session.EXPECT().RefreshCredential(gomock.Any()).Times(0)
	session.EXPECT().Expire(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	c.RegisterSessionHandler(session)

	err := c.Do(context.Background(), &Request{Method: http.MethodPost, Path: "/auth/validate", NoRefresh: true}, nil)

	if !errors.Is(err, apierrors.ErrAuthExpiredUnrecoverable) {
		t.Errorf("expected AuthExpiredUnrecoverable, got %v", err)
	}
}

func TestDoAnonymous(t *testing.T) {
	b := &backend{statuses: []int{http.StatusUnauthorized}, bodies: []string{`{"success":false,"message":"bad password"}`}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	c := newTestClient(t, srv.URL, newStore(t, ""), new(sleepRecorder))

	err := c.Do(context.Background(), &Request{Method: http.MethodPost, Path: "/auth/login", Anonymous: true}, nil)

	if !errors.Is(err, apierrors.ErrInvalidCredentials) {
		t.Fatalf("expected InvalidCredentials, got %v", err)
	}
	if calls := b.calls(); len(calls) != 1 || calls[0].authorization != "" {
		t.Errorf("expected one attempt without credential, got %+v", calls)
	}
}

func TestDoWithoutCredential(t *testing.T) {
	b := &backend{statuses: []int{http.StatusOK}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	c := newTestClient(t, srv.URL, newStore(t, ""), new(sleepRecorder))

	err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

	if !errors.Is(err, apierrors.ErrLoginRequired) {
		t.Errorf("expected LoginRequired, got %v", err)
	}
	if len(b.calls()) != 0 {
		t.Errorf("expected no request to be sent")
	}
}

func TestDoStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "validation", status: http.StatusUnprocessableEntity, body: `{"success":false,"field":"name"}`, expected: apierrors.ErrValidation},
		{name: "not found", status: http.StatusNotFound, expected: apierrors.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, expected: apierrors.ErrConflict},
		{name: "server error is not retried", status: http.StatusInternalServerError, expected: apierrors.ErrServiceUnavailable},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"message":"limit reached"}`, expected: apierrors.ErrRejected},
		{name: "success", status: http.StatusOK, body: `{"success":true}`, expected: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := &backend{statuses: []int{test.status}}
			if test.body != "" {
				b.bodies = []string{test.body}
			}
			srv := httptest.NewServer(b)
			defer srv.Close()

			c := newTestClient(t, srv.URL, newStore(t, "tok"), new(sleepRecorder))

			err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/teams"}, nil)

			if test.expected == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expected != nil && !errors.Is(err, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
			if len(b.calls()) != 1 {
				t.Errorf("expected a single attempt, got %d", len(b.calls()))
			}
		})
	}
}

func TestDoDecodesData(t *testing.T) {
	b := &backend{statuses: []int{http.StatusOK}, bodies: []string{`{"success":true,"data":{"count":3}}`}}
	srv := httptest.NewServer(b)
	defer srv.Close()

	c := newTestClient(t, srv.URL, newStore(t, "tok"), new(sleepRecorder))

	var out struct {
		Count int `json:"count"`
	}
	if err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/links/count"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 3 {
		t.Errorf("expected 3, got %d", out.Count)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"}, newStore(t, ""), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())
	if err == nil {
		t.Errorf("expected error for invalid base url")
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "rfc3339", input: `"2026-01-02T03:04:05Z"`, expected: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "seconds", input: `1767323045`, expected: time.Unix(1767323045, 0)},
		{name: "milliseconds", input: `1767323045000`, expected: time.UnixMilli(1767323045000)},
		{name: "null", input: `null`, expected: time.Time{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(test.input), &ts); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ts.Equal(test.expected) {
				t.Errorf("expected %v, got %v", test.expected, ts.Time)
			}
		})
	}
}
