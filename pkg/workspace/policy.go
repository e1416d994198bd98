// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"fmt"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

type Operation string

const (
	OpUpdateTeam       Operation = "update_team"
	OpDeleteTeam       Operation = "delete_team"
	OpInviteMember     Operation = "invite_member"
	OpRemoveMember     Operation = "remove_member"
	OpUpdateMemberRole Operation = "update_member_role"
	OpAssignRole       Operation = "assign_role"
	OpViewMembers      Operation = "view_members"
	OpLeaveTeam        Operation = "leave_team"
)

// Decision is the outcome of a policy check. Required names the role the
// actor would have needed when the check failed on the actor's own role.
type Decision struct {
	Allowed  bool
	Required types.Role
	Reason   string
}

// Err converts a denial into a PermissionDenied error, nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}

	required := ""
	if d.Required.Valid() {
		required = d.Required.String()
	}
	return apierrors.PermissionDenied(required, d.Reason)
}

func allow() Decision {
	return Decision{Allowed: true}
}

func requires(role types.Role, op Operation) Decision {
	return Decision{Required: role, Reason: fmt.Sprintf("%s requires the %s role", op, role)}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Allowed is the single authorization table for team operations. The
// backend enforces the same rules and remains the authority.
//
// target is the role of the member being acted on for RemoveMember and
// UpdateMemberRole, and the role being granted for InviteMember and
// AssignRole. It is ignored by the other operations. Passing RoleUnknown
// for a member target checks the actor alone.
func Allowed(op Operation, actor, target types.Role) Decision {
	if !actor.Valid() {
		return deny("not a member of this team")
	}

	switch op {
	case OpViewMembers:
		if !actor.AtLeast(types.RoleViewer) {
			return requires(types.RoleViewer, op)
		}
		return allow()

	case OpUpdateTeam:
		if !actor.AtLeast(types.RoleAdmin) {
			return requires(types.RoleAdmin, op)
		}
		return allow()

	case OpDeleteTeam:
		if actor != types.RoleOwner {
			return requires(types.RoleOwner, op)
		}
		return allow()

	case OpInviteMember:
		if !actor.AtLeast(types.RoleAdmin) {
			return requires(types.RoleAdmin, op)
		}
		if !target.Valid() {
			return deny("invalid role")
		}
		if target == types.RoleOwner {
			return deny("ownership cannot be assigned")
		}
		if target > actor {
			return requires(target, op)
		}
		return allow()

	case OpRemoveMember:
		if !actor.AtLeast(types.RoleAdmin) {
			return requires(types.RoleAdmin, op)
		}
		if target == types.RoleOwner {
			return deny("the team owner cannot be removed")
		}
		if target >= actor {
			return deny(fmt.Sprintf("a %s cannot remove a %s", actor, target))
		}
		return allow()

	case OpUpdateMemberRole:
		if !actor.AtLeast(types.RoleAdmin) {
			return requires(types.RoleAdmin, op)
		}
		if target == types.RoleOwner {
			return deny("the team owner role cannot be changed")
		}
		if target >= actor {
			return deny(fmt.Sprintf("a %s cannot change the role of a %s", actor, target))
		}
		return allow()

	case OpAssignRole:
		if !target.Valid() {
			return deny("invalid role")
		}
		if target == types.RoleOwner {
			return deny("ownership cannot be assigned")
		}
		if target > actor {
			return requires(target, op)
		}
		return allow()

	case OpLeaveTeam:
		if actor == types.RoleOwner {
			return deny("the team owner cannot leave, delete the team instead")
		}
		return allow()
	}

	return deny(fmt.Sprintf("unknown operation %s", op))
}
