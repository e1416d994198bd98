// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"time"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go

type SessionInterface interface {
	Status() session.Status
	Principal() *types.Principal
	ExpiresAt() time.Time
}

type WorkspaceInterface interface {
	Scope() types.Scope
	Teams() []*types.Team
}
