// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"github.com/linkforge/session-runtime/internal/types"
)

type Type string

const (
	Logout              Type = "auth-logout"
	TokenRefreshed      Type = "auth-token-refreshed"
	UserUpdated         Type = "auth-user-updated"
	SubscriptionUpdated Type = "subscription-updated"
	ScopeChanged        Type = "workspace-scope-changed"
)

// Event is a broadcast notification. Seq is assigned by the bus and grows
// monotonically in publish order; Generation identifies the session the
// event belongs to.
type Event struct {
	Type       Type
	Seq        uint64
	Generation uint64
	Principal  *types.Principal
	Scope      *types.Scope
	Reason     string
}

type Handler func(Event)
