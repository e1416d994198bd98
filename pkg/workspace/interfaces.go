// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"net/url"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/client"
	"github.com/linkforge/session-runtime/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package workspace -destination ./mock_workspace.go -source=./interfaces.go

type ClientInterface interface {
	Do(context.Context, *client.Request, any) error
}

// SessionInterface is the read side of the session the model follows.
type SessionInterface interface {
	Status() session.Status
	Principal() *types.Principal
	Generation() uint64
	IsCurrent(uint64) bool
}

// PendingStoreInterface parks an invite token across a forced login.
type PendingStoreInterface interface {
	SetPending(context.Context, string, string) error
	TakePending(context.Context, string) (string, error)
}

type ModelInterface interface {
	Scope() types.Scope
	ScopeQuery() url.Values
	SwitchToPersonal() error
	SwitchToTeam(string) error

	LoadTeams(context.Context) ([]*types.Team, error)
	Teams() []*types.Team
	CreateTeam(context.Context, string) (*types.Team, error)
	UpdateTeam(context.Context, string, string) (*types.Team, error)
	DeleteTeam(context.Context, string) error
	LeaveTeam(context.Context, string) error

	InviteUser(context.Context, string, string, string) (*types.Invite, error)
	AcceptInvite(context.Context, string) (*types.Member, error)
	ResumePendingInvite(context.Context) (*types.Member, error)

	ListMembers(context.Context, string) ([]*types.Member, error)
	RemoveMember(context.Context, string, string) error
	UpdateMemberRole(context.Context, string, string, string) (*types.Member, error)
}
