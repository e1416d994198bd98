// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var requestStateKey = contextKey{}

// requestState follows one logical request across its transport attempts.
type requestState struct {
	id          string
	attempts    int
	unavailable int
	authRetried bool

	// session generation at the start of the request, zero without a session
	generation uint64
	hasSession bool
}

func newRequestState() *requestState {
	return &requestState{id: uuid.NewString()}
}

func withRequestState(ctx context.Context, s *requestState) context.Context {
	return context.WithValue(ctx, requestStateKey, s)
}

func getRequestState(ctx context.Context) (*requestState, bool) {
	s, ok := ctx.Value(requestStateKey).(*requestState)
	return s, ok
}

// RequestID returns the id of the logical request ctx belongs to.
func RequestID(ctx context.Context) (string, bool) {
	s, ok := getRequestState(ctx)
	if !ok {
		return "", false
	}
	return s.id, true
}
