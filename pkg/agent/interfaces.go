// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agent

import (
	"context"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package agent -destination ./mock_agent.go -source=./interfaces.go

type SessionInterface interface {
	Restore(context.Context) error
	Heartbeat(context.Context) error
	Status() session.Status
}

type WorkspaceInterface interface {
	LoadTeams(context.Context) ([]*types.Team, error)
	ResumePendingInvite(context.Context) (*types.Member, error)
}
