// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is ordered: a higher value grants everything a lower one does.
type Role int

const (
	RoleUnknown Role = iota
	RoleViewer
	RoleMember
	RoleAdmin
	RoleOwner
)

var roleNames = map[Role]string{
	RoleViewer: "VIEWER",
	RoleMember: "MEMBER",
	RoleAdmin:  "ADMIN",
	RoleOwner:  "OWNER",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r Role) Valid() bool {
	return r >= RoleViewer && r <= RoleOwner
}

// AtLeast reports whether r grants at least the permissions of min.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r >= min
}

// ParseRole is case insensitive.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == normalized {
			return r, nil
		}
	}
	return RoleUnknown, fmt.Errorf("invalid role: %q", s)
}

// MarshalJSON writes null for RoleUnknown so decoded records round trip.
func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON maps a missing, empty or unrecognised role to RoleUnknown,
// which grants nothing. Only a value that is not a string is an error.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*r = RoleUnknown
	if s == nil {
		return nil
	}

	if role, err := ParseRole(*s); err == nil {
		*r = role
	}
	return nil
}
