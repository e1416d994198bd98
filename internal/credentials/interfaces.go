// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"

	"github.com/linkforge/session-runtime/internal/types"
)

// Keys of the consume-once pending values.
const (
	PendingInviteKey     = "pending-invite"
	FederatedStateKey    = "federated-state"
	FederatedVerifierKey = "federated-verifier"
)

type StoreInterface interface {
	Load(context.Context) (*types.Credential, error)
	Save(context.Context, *types.Credential) error
	// Clear erases the credential, pending values are kept.
	Clear(context.Context) error
	SetPending(context.Context, string, string) error
	TakePending(context.Context, string) (string, error)
}
