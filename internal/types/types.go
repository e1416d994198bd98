// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Credential is the persisted session: bearer token, expiry watermark and the
// principal snapshot that came with it.
type Credential struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Principal *Principal `json:"principal,omitempty"`
}

// Expired reports whether the watermark has been reached.
func (c *Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type Principal struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Plan             string `json:"plan"`
	Federated        bool   `json:"federated"`
	SubscriptionPlan string `json:"subscriptionPlan,omitempty"`
}

// Team is a shared workspace. Role is the caller's own role in it, when the
// backend reports one.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"ownerId"`
	Plan        string    `json:"plan,omitempty"`
	MemberLimit int       `json:"memberLimit,omitempty"`
	Role        Role      `json:"role,omitempty"`
	Members     []*Member `json:"members,omitempty"`
}

type Member struct {
	TeamID   string    `json:"teamId"`
	UserID   string    `json:"userId"`
	Email    string    `json:"email,omitempty"`
	Name     string    `json:"name,omitempty"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
	Active   bool      `json:"isActive"`
}

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
)

type Invite struct {
	ID        string       `json:"id"`
	TeamID    string       `json:"teamId"`
	Email     string       `json:"email"`
	Role      Role         `json:"role"`
	InvitedBy string       `json:"invitedBy"`
	Token     string       `json:"token"`
	Status    InviteStatus `json:"status"`
}
