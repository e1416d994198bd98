// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

type ScopeType string

const (
	ScopePersonal ScopeType = "USER"
	ScopeTeam     ScopeType = "TEAM"
)

// Scope is the workspace partition content operations target.
// Exactly one of PrincipalID (personal) or TeamID (team) is meaningful.
type Scope struct {
	Type        ScopeType `json:"scopeType"`
	PrincipalID string    `json:"principalId,omitempty"`
	TeamID      string    `json:"teamId,omitempty"`
	Role        Role      `json:"-"`
}

func PersonalScope(principalID string) Scope {
	return Scope{Type: ScopePersonal, PrincipalID: principalID}
}

func TeamScope(teamID string, role Role) Scope {
	return Scope{Type: ScopeTeam, TeamID: teamID, Role: role}
}

func (s Scope) IsPersonal() bool {
	return s.Type != ScopeTeam
}

// Params returns the scopeType/scopeId pair expected by scoped content endpoints.
func (s Scope) Params() (string, string) {
	if s.IsPersonal() {
		return string(ScopePersonal), s.PrincipalID
	}
	return string(ScopeTeam), s.TeamID
}
