// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// watermark picks the expiry of a credential: the backend's explicit value,
// then the token's own exp claim, then now plus ttl. The token is not
// verified here, that is the backend's job.
func watermark(token string, explicit, now time.Time, ttl time.Duration) time.Time {
	if !explicit.IsZero() {
		return explicit
	}

	claims := new(jwt.RegisteredClaims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}

	return now.Add(ttl)
}
