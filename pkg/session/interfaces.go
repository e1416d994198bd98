// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"time"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/client"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go

type CredentialStoreInterface interface {
	Load(context.Context) (*types.Credential, error)
	Save(context.Context, *types.Credential) error
	Clear(context.Context) error
	SetPending(context.Context, string, string) error
	TakePending(context.Context, string) (string, error)
}

type ClientInterface interface {
	Do(context.Context, *client.Request, any) error
}

type FederatedProviderInterface interface {
	AuthCodeURL(state, verifier string) string
	RedirectURL() string
}

type ManagerInterface interface {
	Restore(context.Context) error
	Login(context.Context, string, string) (*types.Principal, error)
	Signup(context.Context, SignupInput) (*types.Principal, error)
	BeginFederatedLogin(context.Context) (string, error)
	CompleteFederatedLogin(context.Context, string, string) (*types.Principal, error)
	Refresh(context.Context) bool
	RefreshCredential(context.Context) error
	Logout(context.Context) error
	Expire(context.Context, uint64, error)
	Heartbeat(context.Context) error
	ApplySubscription(context.Context, string) error

	Status() Status
	Principal() *types.Principal
	ExpiresAt() time.Time
	Generation() uint64
	IsCurrent(uint64) bool
}
