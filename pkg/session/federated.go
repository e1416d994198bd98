// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

// BeginFederatedLogin prepares the provider round-trip and returns the URL
// the user agent must visit. State and verifier go to the store because the
// redirect may land in another process.
func (m *Manager) BeginFederatedLogin(ctx context.Context) (string, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.BeginFederatedLogin")
	defer span.End()

	if m.provider == nil {
		return "", apierrors.New(apierrors.KindUnknown, "federated login is not configured")
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	if err := m.store.SetPending(ctx, credentials.FederatedStateKey, state); err != nil {
		return "", fmt.Errorf("failed to save federated state: %w", err)
	}
	if err := m.store.SetPending(ctx, credentials.FederatedVerifierKey, verifier); err != nil {
		return "", fmt.Errorf("failed to save federated verifier: %w", err)
	}

	return m.provider.AuthCodeURL(state, verifier), nil
}

// CompleteFederatedLogin exchanges the provider code through the backend.
// The stored state is consumed whatever the outcome.
func (m *Manager) CompleteFederatedLogin(ctx context.Context, code, state string) (*types.Principal, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.CompleteFederatedLogin")
	defer span.End()

	if code == "" {
		return nil, apierrors.MissingField("code")
	}
	if state == "" {
		return nil, apierrors.MissingField("state")
	}
	if m.provider == nil {
		return nil, apierrors.New(apierrors.KindUnknown, "federated login is not configured")
	}

	expected, err := m.store.TakePending(ctx, credentials.FederatedStateKey)
	if errors.Is(err, credentials.ErrNotFound) {
		return nil, apierrors.Invalid("state", "no federated login in progress")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read federated state: %w", err)
	}

	verifier, err := m.store.TakePending(ctx, credentials.FederatedVerifierKey)
	if err != nil && !errors.Is(err, credentials.ErrNotFound) {
		return nil, fmt.Errorf("failed to read federated verifier: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		m.logger.Security().AuthnLoginFail("federated")
		return nil, apierrors.Invalid("state", "federated login state mismatch")
	}

	body := federatedExchange{
		Code:         code,
		CodeVerifier: verifier,
		RedirectURI:  m.provider.RedirectURL(),
	}

	return m.exchange(ctx, "/auth/google", "auth.google", "federated", true, body)
}
