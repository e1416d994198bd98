// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/session"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name       string
		restoreErr error
		status     session.Status
		warmUp     bool
	}{
		{name: "restored session", status: session.StatusAuthenticated, warmUp: true},
		{name: "nothing stored", status: session.StatusAnonymous},
		{name: "backend down", restoreErr: apierrors.ErrServiceUnavailable, status: session.StatusAnonymous},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := NewMockSessionInterface(ctrl)
			mockWorkspace := NewMockWorkspaceInterface(ctrl)

			mockSession.EXPECT().Restore(gomock.Any()).Return(test.restoreErr)
			mockSession.EXPECT().Status().Return(test.status)

			if test.warmUp {
				gomock.InOrder(
					mockWorkspace.EXPECT().ResumePendingInvite(gomock.Any()).Return(&types.Member{TeamID: "t1", Role: types.RoleMember}, nil),
					mockWorkspace.EXPECT().LoadTeams(gomock.Any()).Return([]*types.Team{{ID: "t1"}}, nil),
				)
			}

			a := NewAgent(mockSession, mockWorkspace, "@every 1h", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())

			if err := a.Start(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			<-a.Stop().Done()
		})
	}
}

func TestStartWarmUpFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := NewMockSessionInterface(ctrl)
	mockWorkspace := NewMockWorkspaceInterface(ctrl)

	mockSession.EXPECT().Restore(gomock.Any()).Return(nil)
	mockSession.EXPECT().Status().Return(session.StatusAuthenticated)
	mockWorkspace.EXPECT().ResumePendingInvite(gomock.Any()).Return(nil, apierrors.ErrConflict)
	mockWorkspace.EXPECT().LoadTeams(gomock.Any()).Return(nil, apierrors.ErrServiceUnavailable)

	a := NewAgent(mockSession, mockWorkspace, "@every 1h", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-a.Stop().Done()
}

func TestStartInvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := NewMockSessionInterface(ctrl)
	mockWorkspace := NewMockWorkspaceInterface(ctrl)

	a := NewAgent(mockSession, mockWorkspace, "every so often", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())

	if err := a.Start(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
}

func TestHeartbeat(t *testing.T) {
	tests := []struct {
		name   string
		status session.Status
		called bool
		err    error
	}{
		{name: "authenticated", status: session.StatusAuthenticated, called: true},
		{name: "backend down", status: session.StatusAuthenticated, called: true, err: errors.New("boom")},
		{name: "session revoked", status: session.StatusAuthenticated, called: true, err: apierrors.ErrAuthExpiredUnrecoverable},
		{name: "anonymous", status: session.StatusAnonymous},
		{name: "still loading", status: session.StatusLoading},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := NewMockSessionInterface(ctrl)
			mockWorkspace := NewMockWorkspaceInterface(ctrl)

			mockSession.EXPECT().Status().Return(test.status)
			if test.called {
				mockSession.EXPECT().Heartbeat(gomock.Any()).Return(test.err)
			}

			a := NewAgent(mockSession, mockWorkspace, "@every 1h", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())
			a.heartbeat()
		})
	}
}
