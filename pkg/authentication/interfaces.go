// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/linkforge/session-runtime/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

type ProviderInterface interface {
	// AuthCodeURL returns the consent page URL bound to state and the PKCE verifier
	AuthCodeURL(state, verifier string) string
	RedirectURL() string
}

// CompleterInterface finishes a federated login once the provider redirected back
type CompleterInterface interface {
	CompleteFederatedLogin(ctx context.Context, code, state string) (*types.Principal, error)
}
