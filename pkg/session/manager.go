// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/events"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/internal/validation"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/client"
)

var _ ManagerInterface = (*Manager)(nil)
var _ client.SessionHandlerInterface = (*Manager)(nil)

const (
	defaultRefreshSkew       = time.Minute
	defaultRefreshRetryDelay = 30 * time.Second
	defaultCredentialTTL     = time.Hour

	minRefreshDelay = time.Second

	refreshKey = "refresh"
)

// errStaleSession marks a backend result that arrived after the session it
// was requested for had ended.
var errStaleSession = errors.New("session changed while the request was in flight")

type Config struct {
	RefreshSkew       time.Duration
	RefreshRetryDelay time.Duration
	CredentialTTL     time.Duration
}

// Manager owns the authentication state machine. Every state change goes
// through transitionMu and is published on the bus before the lock is
// released, so subscribers observe changes in the order they happened.
type Manager struct {
	store    CredentialStoreInterface
	client   ClientInterface
	provider FederatedProviderInterface
	bus      events.PublisherInterface
	validate *validation.Validator

	refreshSkew       time.Duration
	refreshRetryDelay time.Duration
	credentialTTL     time.Duration
	now               func() time.Time

	transitionMu sync.Mutex
	refreshGroup singleflight.Group

	mu         sync.RWMutex
	state      state
	principal  *types.Principal
	expiresAt  time.Time
	generation uint64
	timer      *time.Timer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.status()
}

// Principal returns a copy of the authenticated principal, nil when anonymous.
func (m *Manager) Principal() *types.Principal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state.status() != StatusAuthenticated {
		return nil
	}
	return copyPrincipal(m.principal)
}

func (m *Manager) ExpiresAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.expiresAt
}

// Generation identifies the current session. It changes on every login,
// logout and expiry.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.generation
}

func (m *Manager) IsCurrent(gen uint64) bool {
	return m.Generation() == gen
}

// Restore resumes the persisted session at process start. Calling it again
// once the state is known is a no-op.
func (m *Manager) Restore(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Restore")
	defer span.End()

	gen, ok := m.beginRestore()
	if !ok {
		return nil
	}

	cred, err := m.store.Load(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		m.settleAnonymous(gen)
		return nil
	}
	if err != nil {
		m.settleAnonymous(gen)
		return fmt.Errorf("failed to load credential: %w", err)
	}

	m.mu.Lock()
	m.principal = copyPrincipal(cred.Principal)
	m.expiresAt = cred.ExpiresAt
	m.mu.Unlock()

	if !cred.Expired(m.now()) {
		validated, err := m.validateCredential(ctx, cred)
		if err == nil {
			err = m.commit(ctx, gen, validated, false, events.UserUpdated)
			if err == nil {
				m.logger.Debugf("restored session for %s", principalID(validated.Principal))
				return nil
			}
		}
		m.logger.Debugf("stored credential did not validate, falling back to refresh: %v", err)
	}

	_, err, _ = m.refreshGroup.Do(refreshKey, func() (any, error) {
		return nil, m.refresh(context.WithoutCancel(ctx), events.TokenRefreshed, events.UserUpdated)
	})
	if err == nil {
		return nil
	}

	if apierrors.KindOf(err).Transient() {
		// keep the credential, a later start may reach the backend
		m.settleAnonymous(gen)
		return err
	}

	// the refresh rejection already cleared the store
	m.logger.Debugf("stored credential could not be refreshed: %v", err)
	return nil
}

func (m *Manager) validateCredential(ctx context.Context, stored *types.Credential) (*types.Credential, error) {
	env := new(client.Envelope)
	err := m.client.Do(
		ctx,
		&client.Request{Method: http.MethodPost, Path: "/auth/validate", NoRefresh: true, Operation: "auth.validate"},
		env,
	)
	if err != nil {
		return nil, err
	}

	if env.Token == "" {
		cred := *stored
		if env.User != nil {
			cred.Principal = env.User
		}
		return &cred, nil
	}

	return m.credentialFrom(env, stored.Principal)
}

// Refresh reports whether the credential was renewed.
func (m *Manager) Refresh(ctx context.Context) bool {
	return m.RefreshCredential(ctx) == nil
}

// RefreshCredential renews the credential. Concurrent callers share one
// backend exchange and its outcome; the exchange is not cancelled when the
// caller that started it goes away.
func (m *Manager) RefreshCredential(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.RefreshCredential")
	defer span.End()

	ch := m.refreshGroup.DoChan(refreshKey, func() (any, error) {
		return nil, m.refresh(context.WithoutCancel(ctx), events.TokenRefreshed)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if errors.Is(res.Err, errStaleSession) {
			// a newer session owns the store now
			if m.Status() == StatusAuthenticated {
				return nil
			}
			return apierrors.ErrLoginRequired
		}
		return res.Err
	}
}

func (m *Manager) refresh(ctx context.Context, notify ...events.Type) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.refresh")
	defer span.End()

	gen, err := m.beginRefresh()
	if err != nil {
		return err
	}

	env := new(client.Envelope)
	err = m.client.Do(
		ctx,
		&client.Request{Method: http.MethodPost, Path: "/auth/refresh", NoRefresh: true, Operation: "auth.refresh"},
		env,
	)

	var cred *types.Credential
	if err == nil {
		if env.Token == "" {
			err = apierrors.New(apierrors.KindAuthExpiredUnrecoverable, "refresh returned no credential")
		} else {
			cred, err = m.credentialFrom(env, m.currentPrincipal())
		}
	}

	if err != nil {
		if apierrors.KindOf(err).Transient() {
			m.logger.Warnf("credential refresh failed, keeping session: %v", err)
			m.endRefresh(gen)
			return err
		}

		m.logger.Infof("credential refresh rejected: %v", err)
		m.expire(ctx, gen, "refresh rejected")
		return apierrors.Wrap(apierrors.KindAuthExpiredUnrecoverable, err)
	}

	if err := m.commit(ctx, gen, cred, false, notify...); err != nil {
		return err
	}

	m.logger.Security().AuthnTokenRefreshed(principalID(cred.Principal))
	return nil
}

// Login exchanges an email and password for a session.
func (m *Manager) Login(ctx context.Context, email, secret string) (*types.Principal, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Login")
	defer span.End()

	input := LoginInput{Email: email, Password: secret}
	if err := m.validate.Struct(input); err != nil {
		return nil, err
	}

	return m.exchange(ctx, "/auth/login", "auth.login", email, false, input)
}

func (m *Manager) Signup(ctx context.Context, input SignupInput) (*types.Principal, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Signup")
	defer span.End()

	if err := m.validate.Struct(input); err != nil {
		return nil, err
	}

	return m.exchange(ctx, "/auth/register", "auth.register", input.Email, false, input)
}

// exchange posts body to an anonymous credential issuing endpoint and, on
// success, starts a new session with the result.
func (m *Manager) exchange(ctx context.Context, path, operation, identifier string, federated bool, body any) (*types.Principal, error) {
	env := new(client.Envelope)
	err := m.client.Do(
		ctx,
		&client.Request{Method: http.MethodPost, Path: path, Body: body, Anonymous: true, Operation: operation},
		env,
	)
	if err != nil {
		m.logger.Security().AuthnLoginFail(identifier)
		return nil, classifyLoginError(err)
	}

	if env.User == nil {
		m.logger.Security().AuthnLoginFail(identifier)
		return nil, apierrors.New(apierrors.KindUnknown, "login response carried no user")
	}
	if env.Token == "" {
		m.logger.Security().AuthnLoginFail(identifier)
		return nil, apierrors.New(apierrors.KindUnknown, "login response carried no credential")
	}

	cred, err := m.credentialFrom(env, env.User)
	if err != nil {
		return nil, err
	}
	if federated {
		cred.Principal.Federated = true
	}

	if err := m.commit(ctx, 0, cred, true, events.UserUpdated); err != nil {
		return nil, err
	}

	m.logger.Security().AuthnLoginSuccess(cred.Principal.ID)
	return copyPrincipal(cred.Principal), nil
}

// Logout ends the session locally. Outstanding requests complete but their
// results are discarded by generation checks.
func (m *Manager) Logout(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Logout")
	defer span.End()

	id := principalID(m.Principal())

	if err := m.end(ctx, nil, "logout"); err != nil {
		return err
	}

	m.logger.Security().AuthnLogout(id)
	return nil
}

// Expire forces Anonymous after an unrecoverable authentication failure seen
// by a request issued under session gen. A later session is left alone.
func (m *Manager) Expire(ctx context.Context, gen uint64, cause error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Expire")
	defer span.End()

	reason := "credential rejected"
	if cause != nil {
		reason = cause.Error()
	}

	m.expire(ctx, gen, reason)
}

func (m *Manager) expire(ctx context.Context, gen uint64, reason string) {
	if !m.IsCurrent(gen) {
		return
	}

	id := principalID(m.Principal())

	if err := m.end(ctx, &gen, reason); err != nil {
		m.logger.Errorf("failed to clear expired session: %v", err)
	}

	m.logger.Security().SessionExpired(id, reason)
}

// Heartbeat confirms the session with the backend and picks up changes to
// the principal, such as a new subscription plan.
func (m *Manager) Heartbeat(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Heartbeat")
	defer span.End()

	gen := m.Generation()
	if m.Status() != StatusAuthenticated {
		return apierrors.ErrLoginRequired
	}

	env := new(client.Envelope)
	err := m.client.Do(
		ctx,
		&client.Request{Method: http.MethodGet, Path: "/auth/heartbeat", Operation: "auth.heartbeat"},
		env,
	)
	if err != nil {
		return err
	}

	if env.User == nil {
		return nil
	}

	return m.updatePrincipal(ctx, gen, func(p *types.Principal) *types.Principal {
		return env.User
	})
}

// ApplySubscription records a plan change made elsewhere, e.g. a completed checkout.
func (m *Manager) ApplySubscription(ctx context.Context, plan string) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.ApplySubscription")
	defer span.End()

	if plan == "" {
		return apierrors.MissingField("plan")
	}
	if m.Status() != StatusAuthenticated {
		return apierrors.ErrLoginRequired
	}

	return m.updatePrincipal(ctx, m.Generation(), func(p *types.Principal) *types.Principal {
		p.SubscriptionPlan = plan
		p.Plan = plan
		return p
	})
}

// updatePrincipal persists a new principal snapshot for session gen and
// notifies subscribers of what changed.
func (m *Manager) updatePrincipal(ctx context.Context, gen uint64, update func(*types.Principal) *types.Principal) error {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.RLock()
	current := copyPrincipal(m.principal)
	stale := m.generation != gen || m.state.status() != StatusAuthenticated
	m.mu.RUnlock()

	if stale || current == nil {
		return nil
	}

	next := update(copyPrincipal(current))
	if next == nil || *next == *current {
		return nil
	}
	if next.ID != current.ID {
		return apierrors.New(apierrors.KindUnknown, "backend returned a different principal")
	}

	cred, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}
	cred.Principal = copyPrincipal(next)
	if err := m.store.Save(ctx, cred); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	m.mu.Lock()
	m.principal = copyPrincipal(next)
	m.mu.Unlock()

	if next.SubscriptionPlan != current.SubscriptionPlan || next.Plan != current.Plan {
		m.bus.Publish(events.Event{Type: events.SubscriptionUpdated, Generation: gen, Principal: copyPrincipal(next)})
	}
	m.bus.Publish(events.Event{Type: events.UserUpdated, Generation: gen, Principal: copyPrincipal(next)})

	return nil
}

func (m *Manager) beginRestore() (uint64, bool) {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != stateUnknown {
		return 0, false
	}

	m.state = stateRestoring
	return m.generation, true
}

func (m *Manager) beginRefresh() (uint64, error) {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case stateAuthenticated:
		m.state = stateRefreshing
	case stateRestoring, stateRefreshing:
	default:
		return 0, apierrors.ErrLoginRequired
	}

	return m.generation, nil
}

// endRefresh returns to Authenticated after a transient refresh failure and
// schedules another attempt.
func (m *Manager) endRefresh(gen uint64) {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen || m.state != stateRefreshing {
		return
	}

	m.state = stateAuthenticated
	m.armLocked(gen, m.refreshRetryDelay)
}

// settleAnonymous ends a restore that found nothing usable.
func (m *Manager) settleAnonymous(gen uint64) {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen || m.state != stateRestoring {
		return
	}

	m.state = stateAnonymous
	m.principal = nil
	m.expiresAt = time.Time{}
}

// commit persists cred and makes it the active session. A new session bumps
// the generation; otherwise gen must still be current or the result is
// discarded.
func (m *Manager) commit(ctx context.Context, gen uint64, cred *types.Credential, newSession bool, notify ...events.Type) error {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	if !newSession && !m.IsCurrent(gen) {
		return errStaleSession
	}

	if err := m.store.Save(ctx, cred); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	m.mu.Lock()
	if newSession {
		m.generation++
	}
	gen = m.generation
	m.state = stateAuthenticated
	m.principal = copyPrincipal(cred.Principal)
	m.expiresAt = cred.ExpiresAt
	m.armLocked(gen, m.refreshDelay(cred.ExpiresAt))
	m.mu.Unlock()

	for _, t := range notify {
		m.bus.Publish(events.Event{Type: t, Generation: gen, Principal: copyPrincipal(cred.Principal)})
	}

	return nil
}

// end clears the session. With a non-nil gen, nothing happens unless that
// session is still current.
func (m *Manager) end(ctx context.Context, gen *uint64, reason string) error {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	if gen != nil && !m.IsCurrent(*gen) {
		return nil
	}

	err := m.store.Clear(ctx)
	if err != nil {
		err = fmt.Errorf("failed to clear credential: %w", err)
	}

	m.mu.Lock()
	wasAnonymous := m.state == stateAnonymous
	m.generation++
	next := m.generation
	m.state = stateAnonymous
	m.principal = nil
	m.expiresAt = time.Time{}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()

	if !wasAnonymous {
		m.bus.Publish(events.Event{Type: events.Logout, Generation: next, Reason: reason})
	}

	return err
}

// armLocked schedules the background refresh; m.mu must be held.
func (m *Manager) armLocked(gen uint64, delay time.Duration) {
	if m.timer != nil {
		m.timer.Stop()
	}

	m.timer = time.AfterFunc(delay, func() {
		m.backgroundRefresh(gen)
	})
}

func (m *Manager) backgroundRefresh(gen uint64) {
	if !m.IsCurrent(gen) || m.Status() != StatusAuthenticated {
		return
	}

	ctx, span := m.tracer.Start(context.Background(), "session.Manager.backgroundRefresh")
	defer span.End()

	if !m.Refresh(ctx) {
		m.logger.Debugf("background refresh did not renew the credential")
	}
}

func (m *Manager) refreshDelay(expiresAt time.Time) time.Duration {
	return max(expiresAt.Sub(m.now())-m.refreshSkew, minRefreshDelay)
}

func (m *Manager) currentPrincipal() *types.Principal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyPrincipal(m.principal)
}

func (m *Manager) credentialFrom(env *client.Envelope, fallback *types.Principal) (*types.Credential, error) {
	principal := env.User
	if principal == nil {
		principal = fallback
	}
	if principal == nil {
		return nil, apierrors.New(apierrors.KindUnknown, "no principal for credential")
	}

	return &types.Credential{
		Token:     env.Token,
		ExpiresAt: watermark(env.Token, env.ExpiresAt.Time, m.now(), m.credentialTTL),
		Principal: copyPrincipal(principal),
	}, nil
}

// Close stops the background refresh.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func classifyLoginError(err error) error {
	var e *apierrors.Error
	if !errors.As(err, &e) {
		return err
	}

	switch e.Kind {
	case apierrors.KindNotFound:
		return &apierrors.Error{Kind: apierrors.KindAccountNotFound, Status: e.Status, Message: e.Message, Err: err}
	case apierrors.KindRejected:
		if e.Status == http.StatusNotFound {
			return &apierrors.Error{Kind: apierrors.KindAccountNotFound, Status: e.Status, Message: e.Message, Err: err}
		}
		return &apierrors.Error{Kind: apierrors.KindInvalidCredentials, Status: e.Status, Message: e.Message, Err: err}
	case apierrors.KindPermissionDenied:
		return &apierrors.Error{Kind: apierrors.KindInvalidCredentials, Status: e.Status, Message: e.Message, Err: err}
	}

	return err
}

func copyPrincipal(p *types.Principal) *types.Principal {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func principalID(p *types.Principal) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func NewManager(
	cfg Config,
	store CredentialStoreInterface,
	c ClientInterface,
	provider FederatedProviderInterface,
	bus events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	m := new(Manager)

	m.store = store
	m.client = c
	m.provider = provider
	m.bus = bus
	m.validate = validation.NewValidator()

	m.refreshSkew = cfg.RefreshSkew
	if m.refreshSkew <= 0 {
		m.refreshSkew = defaultRefreshSkew
	}
	m.refreshRetryDelay = cfg.RefreshRetryDelay
	if m.refreshRetryDelay <= 0 {
		m.refreshRetryDelay = defaultRefreshRetryDelay
	}
	m.credentialTTL = cfg.CredentialTTL
	if m.credentialTTL <= 0 {
		m.credentialTTL = defaultCredentialTTL
	}
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
