// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/events"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/internal/validation"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/client"
	"github.com/linkforge/session-runtime/pkg/session"
)

var _ ModelInterface = (*Model)(nil)

// ErrSessionChanged is returned when a response arrives for a session that
// has since ended. The response is not applied.
var ErrSessionChanged = client.ErrSessionChanged

// Model tracks the active workspace scope and the caller's teams, and checks
// every team mutation against the policy table before it reaches the
// backend.
type Model struct {
	client   ClientInterface
	session  SessionInterface
	store    PendingStoreInterface
	bus      events.PublisherInterface
	validate *validation.Validator

	unsubscribe func()

	mu sync.RWMutex
	// generation is the session generation the cached state belongs to
	generation  uint64
	principalID string
	scope       types.Scope
	teams       []*types.Team
	teamsLoaded bool
	members     map[string][]*types.Member

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Scope returns the active scope. It defaults to the principal's personal
// workspace.
func (m *Model) Scope() types.Scope {
	m.mu.RLock()
	scope := m.scope
	m.mu.RUnlock()

	if scope.IsPersonal() && scope.PrincipalID == "" {
		if p := m.session.Principal(); p != nil {
			return types.PersonalScope(p.ID)
		}
	}
	return scope
}

// ScopeQuery returns the scopeType and scopeId parameters scoped content
// endpoints expect.
func (m *Model) ScopeQuery() url.Values {
	scopeType, scopeID := m.Scope().Params()

	q := url.Values{}
	q.Set("scopeType", scopeType)
	q.Set("scopeId", scopeID)
	return q
}

func (m *Model) SwitchToPersonal() error {
	p := m.session.Principal()
	if p == nil {
		return apierrors.ErrLoginRequired
	}

	m.setScope(types.PersonalScope(p.ID))
	return nil
}

// SwitchToTeam is a local transition. Membership is not checked, a team the
// caller does not belong to fails later at the backend.
func (m *Model) SwitchToTeam(teamID string) error {
	if teamID == "" {
		return apierrors.MissingField("teamId")
	}
	if m.session.Principal() == nil {
		return apierrors.ErrLoginRequired
	}

	m.mu.RLock()
	role := types.RoleUnknown
	if team := m.findLocked(teamID); team != nil {
		role = team.Role
	}
	m.mu.RUnlock()

	m.setScope(types.TeamScope(teamID, role))
	return nil
}

func (m *Model) setScope(scope types.Scope) {
	m.mu.Lock()
	changed := m.scope != scope
	m.scope = scope
	m.mu.Unlock()

	if changed {
		m.publishScope(scope)
	}
}

func (m *Model) publishScope(scope types.Scope) {
	m.bus.Publish(events.Event{Type: events.ScopeChanged, Generation: m.session.Generation(), Scope: &scope})
}

// LoadTeams fetches the teams the principal belongs to and replaces the cache.
func (m *Model) LoadTeams(ctx context.Context) ([]*types.Team, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.LoadTeams")
	defer span.End()

	p, gen, err := m.principal()
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	if err := m.client.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/teams", Operation: "teams.list"}, env); err != nil {
		return nil, err
	}

	teams := make([]*types.Team, 0, len(env.Teams))
	for _, t := range env.Teams {
		if t == nil {
			continue
		}
		team := copyTeam(t)
		team.Role = resolveRole(t, p.ID)
		if !team.Role.Valid() {
			m.logger.Warnf("team %s carries no recognised role for %s, granting nothing", team.ID, p.ID)
		}
		teams = append(teams, team)
	}

	err = m.apply(gen, func() {
		m.teams = teams
		m.teamsLoaded = true
		if !m.scope.IsPersonal() {
			if team := m.findLocked(m.scope.TeamID); team != nil {
				m.scope.Role = team.Role
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return copyTeams(teams), nil
}

// Teams returns the cached teams without a backend call.
func (m *Model) Teams() []*types.Team {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyTeams(m.teams)
}

// CreateTeam creates a team owned by the principal. The active scope does not
// change.
func (m *Model) CreateTeam(ctx context.Context, name string) (*types.Team, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.CreateTeam")
	defer span.End()

	input := teamInput{Name: name}
	if err := m.validate.Struct(input); err != nil {
		return nil, err
	}

	p, gen, err := m.principal()
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	err = m.client.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/teams", Body: input, Operation: "teams.create"}, env)
	if err != nil {
		return nil, err
	}
	if env.Team == nil {
		return nil, apierrors.New(apierrors.KindUnknown, "create team response carried no team")
	}

	team := copyTeam(env.Team)
	team.Role = resolveRole(env.Team, p.ID)
	if !team.Role.Valid() {
		team.Role = types.RoleOwner
	}

	err = m.apply(gen, func() {
		m.teams = append(slices.DeleteFunc(m.teams, func(t *types.Team) bool { return t.ID == team.ID }), team)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Infof("created team %s", team.ID)
	return copyTeam(team), nil
}

func (m *Model) UpdateTeam(ctx context.Context, teamID, name string) (*types.Team, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.UpdateTeam")
	defer span.End()

	if err := m.validate.Struct(updateTeamInput{TeamID: teamID, Name: name}); err != nil {
		return nil, err
	}

	p, gen, err := m.principal()
	if err != nil {
		return nil, err
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpUpdateTeam, actor, types.RoleUnknown)); err != nil {
		return nil, err
	}

	path, err := teamPath("/teams/{teamId}", teamID)
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	err = m.client.Do(ctx, &client.Request{Method: http.MethodPut, Path: path, Body: teamInput{Name: name}, Operation: "teams.update"}, env)
	if err != nil {
		return nil, err
	}

	team := &types.Team{ID: teamID, Name: name}
	if env.Team != nil {
		team = copyTeam(env.Team)
	}
	team.Role = actor

	err = m.apply(gen, func() {
		for i, t := range m.teams {
			if t.ID == teamID {
				if team.OwnerID == "" {
					team.OwnerID = t.OwnerID
				}
				m.teams[i] = team
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return copyTeam(team), nil
}

// DeleteTeam removes a team the principal owns. When the team is the active
// scope, the scope falls back to personal in the same step that drops the
// team from the cache.
func (m *Model) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.DeleteTeam")
	defer span.End()

	if teamID == "" {
		return apierrors.MissingField("teamId")
	}

	p, gen, err := m.principal()
	if err != nil {
		return err
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return err
	}
	if err := m.check(p, teamID, Allowed(OpDeleteTeam, actor, types.RoleUnknown)); err != nil {
		return err
	}

	path, err := teamPath("/teams/{teamId}", teamID)
	if err != nil {
		return err
	}

	if err := m.client.Do(ctx, &client.Request{Method: http.MethodDelete, Path: path, Operation: "teams.delete"}, nil); err != nil {
		return err
	}

	m.logger.Infof("deleted team %s", teamID)
	return m.dropTeam(gen, p.ID, teamID)
}

// LeaveTeam removes the principal from a team it does not own.
func (m *Model) LeaveTeam(ctx context.Context, teamID string) error {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.LeaveTeam")
	defer span.End()

	if teamID == "" {
		return apierrors.MissingField("teamId")
	}

	p, gen, err := m.principal()
	if err != nil {
		return err
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return err
	}
	if err := m.check(p, teamID, Allowed(OpLeaveTeam, actor, types.RoleUnknown)); err != nil {
		return err
	}

	path, err := teamPath("/teams/{teamId}/leave", teamID)
	if err != nil {
		return err
	}

	if err := m.client.Do(ctx, &client.Request{Method: http.MethodPost, Path: path, Operation: "teams.leave"}, nil); err != nil {
		return err
	}

	return m.dropTeam(gen, p.ID, teamID)
}

func (m *Model) dropTeam(gen uint64, principalID, teamID string) error {
	var fallback *types.Scope

	err := m.apply(gen, func() {
		m.teams = slices.DeleteFunc(m.teams, func(t *types.Team) bool { return t.ID == teamID })
		delete(m.members, teamID)

		if !m.scope.IsPersonal() && m.scope.TeamID == teamID {
			m.scope = types.PersonalScope(principalID)
			scope := m.scope
			fallback = &scope
		}
	})
	if err != nil {
		return err
	}

	if fallback != nil {
		m.publishScope(*fallback)
	}
	return nil
}

// InviteUser invites email to a team with the given role. Membership does
// not change until the invite is accepted.
func (m *Model) InviteUser(ctx context.Context, teamID, email, role string) (*types.Invite, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.InviteUser")
	defer span.End()

	if err := m.validate.Struct(inviteInput{TeamID: teamID, Email: email, Role: role}); err != nil {
		return nil, err
	}
	requested, err := parseRole(role)
	if err != nil {
		return nil, err
	}

	p, _, err := m.principal()
	if err != nil {
		return nil, err
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpInviteMember, actor, requested)); err != nil {
		return nil, err
	}

	path, err := teamPath("/teams/{teamId}/invite", teamID)
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	err = m.client.Do(
		ctx,
		&client.Request{Method: http.MethodPost, Path: path, Body: inviteBody{Email: email, Role: requested.String()}, Operation: "teams.invite"},
		env,
	)
	if err != nil {
		return nil, err
	}
	if env.Invite == nil {
		return nil, apierrors.New(apierrors.KindUnknown, "invite response carried no invite")
	}

	invite := *env.Invite
	if invite.Status == "" {
		invite.Status = types.InviteStatusPending
	}
	if invite.TeamID == "" {
		invite.TeamID = teamID
	}

	m.logger.Infof("invited %s to team %s as %s", email, teamID, requested)
	return &invite, nil
}

// AcceptInvite redeems an invite token. Without a session the token is
// parked and ErrLoginRequired returned; ResumePendingInvite picks it up after
// login.
func (m *Model) AcceptInvite(ctx context.Context, token string) (*types.Member, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.AcceptInvite")
	defer span.End()

	input := acceptInput{Token: token}
	if err := m.validate.Struct(input); err != nil {
		return nil, err
	}

	p, gen, err := m.principal()
	if errors.Is(err, apierrors.ErrLoginRequired) {
		if err := m.store.SetPending(ctx, credentials.PendingInviteKey, token); err != nil {
			return nil, fmt.Errorf("failed to park invite: %w", err)
		}
		m.logger.Debugf("invite parked until login")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	err = m.client.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/teams/invite/accept", Body: input, Operation: "teams.accept"}, env)
	if err != nil {
		return nil, err
	}

	member := acceptedMember(env, p)
	if member == nil {
		return nil, apierrors.New(apierrors.KindUnknown, "accept response carried no membership")
	}

	err = m.apply(gen, func() {
		delete(m.members, member.TeamID)

		if env.Team == nil {
			// the next role lookup reloads the list
			m.teamsLoaded = false
			return
		}

		team := copyTeam(env.Team)
		team.Role = member.Role
		m.teams = append(slices.DeleteFunc(m.teams, func(t *types.Team) bool { return t.ID == team.ID }), team)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Infof("joined team %s as %s", member.TeamID, member.Role)
	return member, nil
}

// ResumePendingInvite accepts an invite parked by AcceptInvite. It returns
// nil, nil when nothing is parked.
func (m *Model) ResumePendingInvite(ctx context.Context) (*types.Member, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.ResumePendingInvite")
	defer span.End()

	if m.session.Status() != session.StatusAuthenticated {
		return nil, apierrors.ErrLoginRequired
	}

	token, err := m.store.TakePending(ctx, credentials.PendingInviteKey)
	if errors.Is(err, credentials.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read parked invite: %w", err)
	}

	member, err := m.AcceptInvite(ctx, token)
	if err != nil && apierrors.KindOf(err).Transient() {
		if perr := m.store.SetPending(ctx, credentials.PendingInviteKey, token); perr != nil {
			m.logger.Errorf("failed to re-park invite: %v", perr)
		}
	}
	return member, err
}

// ListMembers fetches the members of a team. Members are loaded per team on
// demand and cached until the session changes.
func (m *Model) ListMembers(ctx context.Context, teamID string) ([]*types.Member, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.ListMembers")
	defer span.End()

	if teamID == "" {
		return nil, apierrors.MissingField("teamId")
	}

	p, gen, err := m.principal()
	if err != nil {
		return nil, err
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpViewMembers, actor, types.RoleUnknown)); err != nil {
		return nil, err
	}

	return m.fetchMembers(ctx, gen, teamID)
}

func (m *Model) fetchMembers(ctx context.Context, gen uint64, teamID string) ([]*types.Member, error) {
	path, err := teamPath("/teams/{teamId}/members", teamID)
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	if err := m.client.Do(ctx, &client.Request{Method: http.MethodGet, Path: path, Operation: "teams.members"}, env); err != nil {
		return nil, err
	}

	members := make([]*types.Member, 0, len(env.Members))
	for _, mb := range env.Members {
		if mb == nil {
			continue
		}
		cp := *mb
		if cp.TeamID == "" {
			cp.TeamID = teamID
		}
		members = append(members, &cp)
	}

	err = m.apply(gen, func() {
		m.members[teamID] = members
	})
	if err != nil {
		return nil, err
	}

	return copyMembers(members), nil
}

// RemoveMember removes another member with a lower role than the actor.
func (m *Model) RemoveMember(ctx context.Context, teamID, userID string) error {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.RemoveMember")
	defer span.End()

	if err := m.validate.Struct(memberInput{TeamID: teamID, UserID: userID}); err != nil {
		return err
	}

	p, gen, err := m.principal()
	if err != nil {
		return err
	}
	if userID == p.ID {
		return m.check(p, teamID, deny("you cannot remove yourself, leave the team instead"))
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return err
	}
	if err := m.check(p, teamID, Allowed(OpRemoveMember, actor, types.RoleUnknown)); err != nil {
		return err
	}

	target, err := m.memberRole(ctx, gen, teamID, userID)
	if err != nil {
		return err
	}
	if err := m.check(p, teamID, Allowed(OpRemoveMember, actor, target)); err != nil {
		return err
	}

	path, err := memberPath("/teams/{teamId}/members/{userId}", teamID, userID)
	if err != nil {
		return err
	}

	if err := m.client.Do(ctx, &client.Request{Method: http.MethodDelete, Path: path, Operation: "teams.members.remove"}, nil); err != nil {
		return err
	}

	return m.apply(gen, func() {
		m.members[teamID] = slices.DeleteFunc(m.members[teamID], func(mb *types.Member) bool { return mb.UserID == userID })
	})
}

// UpdateMemberRole changes the role of another member. Neither the target's
// current role nor the new one may reach the actor's own, and OWNER is never
// granted or taken away here.
func (m *Model) UpdateMemberRole(ctx context.Context, teamID, userID, role string) (*types.Member, error) {
	ctx, span := m.tracer.Start(ctx, "workspace.Model.UpdateMemberRole")
	defer span.End()

	if err := m.validate.Struct(roleInput{TeamID: teamID, UserID: userID, Role: role}); err != nil {
		return nil, err
	}
	next, err := parseRole(role)
	if err != nil {
		return nil, err
	}

	p, gen, err := m.principal()
	if err != nil {
		return nil, err
	}
	if userID == p.ID {
		return nil, m.check(p, teamID, deny("you cannot change your own role"))
	}

	actor, err := m.actorRole(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpUpdateMemberRole, actor, types.RoleUnknown)); err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpAssignRole, actor, next)); err != nil {
		return nil, err
	}

	target, err := m.memberRole(ctx, gen, teamID, userID)
	if err != nil {
		return nil, err
	}
	if err := m.check(p, teamID, Allowed(OpUpdateMemberRole, actor, target)); err != nil {
		return nil, err
	}

	path, err := memberPath("/teams/{teamId}/members/{userId}/role", teamID, userID)
	if err != nil {
		return nil, err
	}

	env := new(client.Envelope)
	err = m.client.Do(
		ctx,
		&client.Request{Method: http.MethodPut, Path: path, Body: roleBody{Role: next.String()}, Operation: "teams.members.role"},
		env,
	)
	if err != nil {
		return nil, err
	}

	var updated *types.Member
	err = m.apply(gen, func() {
		for i, mb := range m.members[teamID] {
			if mb.UserID != userID {
				continue
			}
			cp := *mb
			if env.Member != nil {
				cp = *env.Member
			}
			cp.Role = next
			m.members[teamID][i] = &cp
			updated = &cp
		}
	})
	if err != nil {
		return nil, err
	}

	if updated == nil {
		updated = &types.Member{TeamID: teamID, UserID: userID, Role: next, Active: true}
	}
	cp := *updated
	return &cp, nil
}

// principal returns the authenticated principal and the session generation
// results must be applied under.
func (m *Model) principal() (*types.Principal, uint64, error) {
	gen := m.session.Generation()
	p := m.session.Principal()
	if p == nil {
		return nil, 0, apierrors.ErrLoginRequired
	}
	return p, gen, nil
}

// actorRole is the principal's role in teamID, loading the team list first
// when this session has not fetched it yet. RoleUnknown means not a member.
func (m *Model) actorRole(ctx context.Context, teamID string) (types.Role, error) {
	m.mu.RLock()
	loaded := m.teamsLoaded
	m.mu.RUnlock()

	if !loaded {
		if _, err := m.LoadTeams(ctx); err != nil {
			return types.RoleUnknown, err
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if team := m.findLocked(teamID); team != nil {
		return team.Role, nil
	}
	return types.RoleUnknown, nil
}

func (m *Model) memberRole(ctx context.Context, gen uint64, teamID, userID string) (types.Role, error) {
	m.mu.RLock()
	members, cached := m.members[teamID]
	m.mu.RUnlock()

	if !cached {
		var err error
		if members, err = m.fetchMembers(ctx, gen, teamID); err != nil {
			return types.RoleUnknown, err
		}
	}

	for _, mb := range members {
		if mb.UserID == userID {
			return mb.Role, nil
		}
	}
	return types.RoleUnknown, apierrors.New(apierrors.KindNotFound, "user is not a member of this team")
}

func (m *Model) check(p *types.Principal, teamID string, d Decision) error {
	if err := d.Err(); err != nil {
		m.logger.Security().AuthzFailure(p.ID, "team:"+teamID)
		return err
	}
	return nil
}

// apply runs f under the lock if gen is still the current session, so a late
// response never lands in the state of a newer session.
func (m *Model) apply(gen uint64, f func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.session.IsCurrent(gen) || gen < m.generation {
		return ErrSessionChanged
	}

	m.generation = gen
	f()
	return nil
}

func (m *Model) findLocked(teamID string) *types.Team {
	for _, t := range m.teams {
		if t.ID == teamID {
			return t
		}
	}
	return nil
}

func (m *Model) handleSessionEvent(e events.Event) {
	switch e.Type {
	case events.Logout:
		m.reset(e.Generation, "")
	case events.UserUpdated:
		if e.Principal == nil {
			return
		}

		m.mu.RLock()
		same := m.principalID == e.Principal.ID
		m.mu.RUnlock()

		if same {
			m.mu.Lock()
			m.generation = max(m.generation, e.Generation)
			m.mu.Unlock()
			return
		}
		m.reset(e.Generation, e.Principal.ID)
	}
}

// reset drops everything cached for the previous session.
func (m *Model) reset(gen uint64, principalID string) {
	m.mu.Lock()

	if gen < m.generation {
		m.mu.Unlock()
		return
	}

	wasTeam := !m.scope.IsPersonal()

	m.generation = gen
	m.principalID = principalID
	m.scope = types.PersonalScope(principalID)
	m.teams = nil
	m.teamsLoaded = false
	m.members = make(map[string][]*types.Member)

	scope := m.scope
	m.mu.Unlock()

	if wasTeam {
		m.bus.Publish(events.Event{Type: events.ScopeChanged, Generation: gen, Scope: &scope})
	}
}

// Close stops following session events.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func resolveRole(t *types.Team, principalID string) types.Role {
	if t.Role.Valid() {
		return t.Role
	}
	if t.OwnerID != "" && t.OwnerID == principalID {
		return types.RoleOwner
	}
	for _, mb := range t.Members {
		if mb != nil && mb.UserID == principalID {
			return mb.Role
		}
	}
	return types.RoleUnknown
}

func acceptedMember(env *client.Envelope, p *types.Principal) *types.Member {
	if env.Member != nil {
		cp := *env.Member
		return &cp
	}
	if env.Invite == nil {
		return nil
	}
	return &types.Member{
		TeamID: env.Invite.TeamID,
		UserID: p.ID,
		Email:  p.Email,
		Name:   p.Name,
		Role:   env.Invite.Role,
		Active: true,
	}
}

func parseRole(role string) (types.Role, error) {
	r, err := types.ParseRole(role)
	if err != nil {
		return types.RoleUnknown, apierrors.Invalid("role", "role must be one of VIEWER, MEMBER, ADMIN or OWNER")
	}
	return r, nil
}

func teamPath(template, teamID string) (string, error) {
	path, err := client.Path(template, "teamId", teamID)
	if err != nil {
		return "", apierrors.Invalid("teamId", err.Error())
	}
	return path, nil
}

func memberPath(template, teamID, userID string) (string, error) {
	path, err := client.Path(template, "teamId", teamID, "userId", userID)
	if err != nil {
		return "", apierrors.Invalid("userId", err.Error())
	}
	return path, nil
}

// copyTeam is shallow; members are held per team by the model, not on the
// team record.
func copyTeam(t *types.Team) *types.Team {
	cp := *t
	cp.Members = nil
	return &cp
}

func copyTeams(teams []*types.Team) []*types.Team {
	out := make([]*types.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, copyTeam(t))
	}
	return out
}

func copyMembers(members []*types.Member) []*types.Member {
	out := make([]*types.Member, 0, len(members))
	for _, mb := range members {
		cp := *mb
		out = append(out, &cp)
	}
	return out
}

func NewModel(
	c ClientInterface,
	s SessionInterface,
	store PendingStoreInterface,
	bus events.BusInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Model {
	m := new(Model)

	m.client = c
	m.session = s
	m.store = store
	m.bus = bus
	m.validate = validation.NewValidator()

	m.members = make(map[string][]*types.Member)
	if p := s.Principal(); p != nil {
		m.principalID = p.ID
		m.scope = types.PersonalScope(p.ID)
	}
	m.generation = s.Generation()

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	m.unsubscribe = bus.Subscribe(m.handleSessionEvent, events.Logout, events.UserUpdated)

	return m
}
