// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"

	"github.com/linkforge/session-runtime/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package client -destination ./mock_client.go -source=./interfaces.go

type ClientInterface interface {
	Do(context.Context, *Request, any) error
}

// SessionHandlerInterface is the part of the session the client calls back
// into when the backend rejects a credential.
type SessionHandlerInterface interface {
	// Generation identifies the session a request was issued under.
	Generation() uint64
	// RefreshCredential joins the in-flight refresh or starts one.
	RefreshCredential(context.Context) error
	// Expire forces the session to Anonymous if it is still the given generation.
	Expire(context.Context, uint64, error)
}

type CredentialReaderInterface interface {
	Load(context.Context) (*types.Credential, error)
}
