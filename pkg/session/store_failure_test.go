// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/linkforge/session-runtime/internal/events"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/client"
)

func newMockedManager(t *testing.T) (*Manager, *MockCredentialStoreInterface, *MockClientInterface, *recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := NewMockCredentialStoreInterface(ctrl)
	c := NewMockClientInterface(ctrl)

	logger := logging.NewNoopLogger()
	bus := events.NewBus(logger)
	rec := &recorder{seen: make(chan events.Event, 16)}
	bus.Subscribe(rec.handle)

	m := NewManager(Config{}, store, c, fakeProvider{}, bus, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logger)
	t.Cleanup(m.Close)

	return m, store, c, rec
}

func loginResponse(token string) func(context.Context, *client.Request, any) error {
	return func(_ context.Context, _ *client.Request, out any) error {
		env := out.(*client.Envelope)
		env.Token = token
		env.ExpiresAt = client.Timestamp{Time: time.Now().Add(time.Hour)}
		env.User = &types.Principal{ID: "x", Name: "X", Email: "x@example.com", Plan: "FREE"}
		return nil
	}
}

func TestLoginSaveFailureLeavesStateUntouched(t *testing.T) {
	m, store, c, rec := newMockedManager(t)

	c.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(loginResponse("tok")).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)

	_, err := m.Login(context.Background(), "x@example.com", "secret-password")

	if err == nil {
		t.Fatal("expected the save failure to be reported")
	}
	if m.Status() == StatusAuthenticated {
		t.Errorf("an unsaved credential must not start a session")
	}
	if m.Principal() != nil {
		t.Errorf("expected no principal, got %+v", m.Principal())
	}
	if m.Generation() != 0 {
		t.Errorf("expected the generation to stay at 0, got %d", m.Generation())
	}
	if len(rec.types()) != 0 {
		t.Errorf("expected no events, got %v", rec.types())
	}
}

func TestLogoutClearFailureStillEndsSession(t *testing.T) {
	m, store, c, rec := newMockedManager(t)

	c.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(loginResponse("tok")).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	store.EXPECT().Clear(gomock.Any()).Return(errors.New("read-only filesystem")).Times(1)

	if _, err := m.Login(context.Background(), "x@example.com", "secret-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gen := m.Generation()

	err := m.Logout(context.Background())

	if err == nil {
		t.Fatal("expected the clear failure to be reported")
	}
	if m.Status() != StatusAnonymous {
		t.Errorf("expected anonymous, got %v", m.Status())
	}
	if m.IsCurrent(gen) {
		t.Errorf("expected the session generation to end")
	}
	if !rec.has(events.Logout) {
		t.Errorf("expected a logout event, got %v", rec.types())
	}
}

func TestExpireIgnoresEndedGeneration(t *testing.T) {
	m, store, c, _ := newMockedManager(t)

	c.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(loginResponse("tok")).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	store.EXPECT().Clear(gomock.Any()).Times(0)

	if _, err := m.Login(context.Background(), "x@example.com", "secret-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Expire(context.Background(), m.Generation()-1, errors.New("rejected"))

	if m.Status() != StatusAuthenticated {
		t.Errorf("expected the current session to survive, got %v", m.Status())
	}
}
