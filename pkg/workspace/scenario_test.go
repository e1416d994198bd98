// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/events"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/client"
	"github.com/linkforge/session-runtime/pkg/session"
)

type account struct {
	principal types.Principal
	password  string
}

// teamBackend is an in-memory stand-in for the team endpoints.
type teamBackend struct {
	mu       sync.Mutex
	accounts map[string]*account
	teams    map[string]*types.Team
	members  map[string][]*types.Member
	invites  map[string]*types.Invite
	nextID   int
}

func newTeamBackend() *teamBackend {
	b := new(teamBackend)
	b.accounts = map[string]*account{
		"x@example.com": {principal: types.Principal{ID: "x", Name: "X", Email: "x@example.com", Plan: "FREE"}, password: "secret-x"},
		"b@x.com":       {principal: types.Principal{ID: "b", Name: "B", Email: "b@x.com", Plan: "FREE"}, password: "secret-b"},
	}
	b.teams = map[string]*types.Team{}
	b.members = map[string][]*types.Member{}
	b.invites = map[string]*types.Invite{}
	return b
}

func (b *teamBackend) router() http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/login", b.login)
	r.Group(func(r chi.Router) {
		r.Use(b.authenticate)
		r.Get("/teams", b.listTeams)
		r.Post("/teams", b.createTeam)
		r.Post("/teams/invite/accept", b.acceptInvite)
		r.Post("/teams/{teamId}/invite", b.invite)
		r.Get("/teams/{teamId}/members", b.listMembers)
	})

	return r
}

type userKey struct{}

func (b *teamBackend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer tok-")
		if !ok {
			write(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, id)))
	})
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *teamBackend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	acc, ok := b.accounts[body.Email]
	b.mu.Unlock()

	if !ok {
		write(w, http.StatusNotFound, map[string]any{"success": false, "message": "user not found"})
		return
	}
	if acc.password != body.Password {
		write(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid password"})
		return
	}

	write(w, http.StatusOK, map[string]any{
		"success":   true,
		"token":     "tok-" + acc.principal.ID,
		"expiresAt": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		"user":      acc.principal,
	})
}

func (b *teamBackend) roleOf(teamID, userID string) types.Role {
	for _, mb := range b.members[teamID] {
		if mb.UserID == userID {
			return mb.Role
		}
	}
	return types.RoleUnknown
}

func (b *teamBackend) listTeams(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(userKey{}).(string)

	b.mu.Lock()
	defer b.mu.Unlock()

	teams := []*types.Team{}
	for id, team := range b.teams {
		if role := b.roleOf(id, user); role.Valid() {
			cp := *team
			cp.Role = role
			teams = append(teams, &cp)
		}
	}
	write(w, http.StatusOK, map[string]any{"success": true, "teams": teams})
}

func (b *teamBackend) createTeam(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(userKey{}).(string)

	var body struct {
		Name string `json:"name"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	team := &types.Team{ID: fmt.Sprintf("team-%d", b.nextID), Name: body.Name, OwnerID: user, Plan: "FREE", MemberLimit: 5}
	b.teams[team.ID] = team

	var owner *account
	for _, acc := range b.accounts {
		if acc.principal.ID == user {
			owner = acc
		}
	}
	b.members[team.ID] = []*types.Member{
		{TeamID: team.ID, UserID: user, Email: owner.principal.Email, Role: types.RoleOwner, JoinedAt: time.Now(), Active: true},
	}

	write(w, http.StatusOK, map[string]any{"success": true, "team": team})
}

func (b *teamBackend) invite(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(userKey{}).(string)
	teamID := chi.URLParam(r, "teamId")

	var body struct {
		Email string     `json:"email"`
		Role  types.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		write(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roleOf(teamID, user).AtLeast(types.RoleAdmin) {
		write(w, http.StatusForbidden, map[string]any{"success": false, "message": "admin required"})
		return
	}

	b.nextID++
	inv := &types.Invite{
		ID:        fmt.Sprintf("invite-%d", b.nextID),
		TeamID:    teamID,
		Email:     body.Email,
		Role:      body.Role,
		InvitedBy: user,
		Token:     fmt.Sprintf("inv-token-%d", b.nextID),
		Status:    types.InviteStatusPending,
	}
	b.invites[inv.Token] = inv

	write(w, http.StatusOK, map[string]any{"success": true, "invite": inv})
}

func (b *teamBackend) acceptInvite(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(userKey{}).(string)

	var body struct {
		Token string `json:"token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()

	inv, ok := b.invites[body.Token]
	if !ok {
		write(w, http.StatusNotFound, map[string]any{"success": false, "message": "invite not found"})
		return
	}
	if inv.Status == types.InviteStatusAccepted {
		write(w, http.StatusConflict, map[string]any{"success": false, "message": "invite already used"})
		return
	}

	inv.Status = types.InviteStatusAccepted
	member := &types.Member{TeamID: inv.TeamID, UserID: user, Email: inv.Email, Role: inv.Role, JoinedAt: time.Now(), Active: true}
	b.members[inv.TeamID] = append(b.members[inv.TeamID], member)

	write(w, http.StatusOK, map[string]any{"success": true, "member": member, "invite": inv, "team": b.teams[inv.TeamID]})
}

func (b *teamBackend) listMembers(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(userKey{}).(string)
	teamID := chi.URLParam(r, "teamId")

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roleOf(teamID, user).Valid() {
		write(w, http.StatusForbidden, map[string]any{"success": false, "message": "not a member"})
		return
	}
	write(w, http.StatusOK, map[string]any{"success": true, "members": b.members[teamID]})
}

func TestLoginCreateInviteAccept(t *testing.T) {
	ctx := context.Background()

	backend := newTeamBackend()
	server := httptest.NewServer(backend.router())
	defer server.Close()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("linkforge")

	store := credentials.NewMemoryStore()
	bus := events.NewBus(logger)

	c, err := client.NewClient(client.Config{BaseURL: server.URL}, store, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := session.NewManager(session.Config{}, store, c, nil, bus, tracer, monitor, logger)
	defer sessions.Close()
	c.RegisterSessionHandler(sessions)

	model := NewModel(c, sessions, store, bus, tracer, monitor, logger)
	defer model.Close()

	if err := sessions.Restore(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// principal X logs in on the free plan
	p, err := sessions.Login(ctx, "x@example.com", "secret-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "x" || p.Plan != "FREE" {
		t.Fatalf("unexpected principal %+v", p)
	}

	team, err := model.CreateTeam(ctx, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Name != "Acme" || team.Role != types.RoleOwner {
		t.Fatalf("unexpected team %+v", team)
	}
	if scope := model.Scope(); !scope.IsPersonal() || scope.PrincipalID != "x" {
		t.Fatalf("scope must stay personal until switched, got %+v", scope)
	}

	invite, err := model.InviteUser(ctx, team.ID, "b@x.com", "ADMIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invite.Status != types.InviteStatusPending || invite.Role != types.RoleAdmin {
		t.Fatalf("unexpected invite %+v", invite)
	}

	// b opens the invite link while logged out; the token survives the login
	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := model.AcceptInvite(ctx, invite.Token); !errors.Is(err, apierrors.ErrLoginRequired) {
		t.Fatalf("expected LoginRequired, got %v", err)
	}

	if _, err := sessions.Login(ctx, "b@x.com", "secret-b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	member, err := model.ResumePendingInvite(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.UserID != "b" || member.Role != types.RoleAdmin {
		t.Fatalf("unexpected member %+v", member)
	}
	backend.mu.Lock()
	accepted := backend.invites[invite.Token].Status == types.InviteStatusAccepted
	backend.mu.Unlock()
	if !accepted {
		t.Errorf("expected the invite to be accepted")
	}

	members, err := model.ListMembers(ctx, team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, mb := range members {
		if mb.Email == "b@x.com" {
			found = true
			if mb.Role != types.RoleAdmin {
				t.Errorf("expected ADMIN, got %v", mb.Role)
			}
		}
	}
	if !found {
		t.Errorf("expected b@x.com among %+v", members)
	}

	// an invite is consumed once
	if _, err := model.AcceptInvite(ctx, invite.Token); !errors.Is(err, apierrors.ErrConflict) {
		t.Errorf("expected Conflict on reuse, got %v", err)
	}

	// as ADMIN, b cannot mint an OWNER
	if _, err := model.InviteUser(ctx, team.ID, "c@x.com", "OWNER"); !errors.Is(err, apierrors.ErrPermissionDenied) {
		t.Errorf("expected PermissionDenied, got %v", err)
	}
}
