// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

var _ ClientInterface = (*Client)(nil)

// ErrSessionChanged is returned for a request whose session was replaced or
// ended before it completed.
var ErrSessionChanged = errors.New("session changed while the request was in flight")

const (
	defaultMaxAttempts    = 3
	defaultBackoffInitial = 2 * time.Second
	defaultTimeout        = 30 * time.Second

	requestIDHeader = "X-Request-ID"
	backendName     = "backend"

	// response bodies are envelopes, anything larger is not one
	maxBodySize = 8 << 20
)

// Request is one logical backend call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Anonymous requests carry no credential and never trigger a refresh.
	Anonymous bool
	// NoRefresh requests carry the credential but report a rejection as
	// AuthExpiredUnrecoverable instead of refreshing. Used by the session
	// for its own validate and refresh calls.
	NoRefresh bool
	// Operation labels metrics, defaults to the method.
	Operation string
}

func (r *Request) operation() string {
	if r.Operation != "" {
		return r.Operation
	}
	return r.Method
}

type SleepFunc func(context.Context, time.Duration) error

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	BackoffInitial time.Duration
	Transport      http.RoundTripper
	// Sleep waits between retries, defaults to a context aware timer.
	Sleep SleepFunc
}

// Client sends backend requests under the retry and reauthentication policy.
type Client struct {
	baseURL        *url.URL
	http           *http.Client
	maxAttempts    int
	backoffInitial time.Duration
	sleep          SleepFunc

	store CredentialReaderInterface

	mu      sync.RWMutex
	session SessionHandlerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterSessionHandler wires the session that owns the credential. Without
// one, rejected credentials are reported as AuthExpiredUnrecoverable.
func (c *Client) RegisterSessionHandler(s SessionHandlerInterface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = s
}

func (c *Client) sessionHandler() SessionHandlerInterface {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

// Do sends req and decodes the response envelope into out, which may be nil.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	ctx, span := c.tracer.Start(ctx, "client.Client.Do")
	defer span.End()

	state := newRequestState()
	if session := c.sessionHandler(); session != nil && !req.Anonymous {
		state.generation = session.Generation()
		state.hasSession = true
	}
	ctx = withRequestState(ctx, state)

	span.SetAttributes(
		attribute.String("request.id", state.id),
		attribute.String("request.operation", req.operation()),
	)

	err := c.do(ctx, req, state, out)

	outcome := "success"
	if err != nil {
		outcome = apierrors.KindOf(err).String()
		span.RecordError(err)
	}
	span.SetAttributes(attribute.Int("request.attempts", state.attempts))

	_ = c.monitor.SetRequestAttempts(
		map[string]string{"route": req.operation(), "outcome": outcome},
		float64(state.attempts),
	)

	return err
}

func (c *Client) do(ctx context.Context, req *Request, state *requestState, out any) error {
	body, err := c.encodeBody(req.Body)
	if err != nil {
		return err
	}

	b := c.newBackOff()

	for {
		token := ""
		if !req.Anonymous {
			if err := c.checkSession(state); err != nil {
				return err
			}
			token, err = c.token(ctx)
			if err != nil {
				return err
			}
		}

		state.attempts++

		status, env, err := c.send(ctx, req, body, token, state)
		if err != nil {
			return err
		}

		switch {
		case status == http.StatusServiceUnavailable:
			state.unavailable++
			if state.unavailable >= c.maxAttempts {
				return &apierrors.Error{
					Kind:    apierrors.KindServiceUnavailable,
					Status:  status,
					Message: env.Message,
				}
			}

			delay := b.NextBackOff()
			c.logger.Debugf("request %s unavailable, retrying in %v", state.id, delay)

			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
			continue

		case (status == http.StatusUnauthorized || status == http.StatusForbidden) && !req.Anonymous:
			retry, err := c.reauthenticate(ctx, req, state, status, token, env)
			if err != nil {
				return err
			}
			if retry {
				continue
			}
		}

		return decode(req, status, env, out)
	}
}

// reauthenticate decides what a rejected credential means for the request.
// It returns true when the request should be replayed.
func (c *Client) reauthenticate(ctx context.Context, req *Request, state *requestState, status int, token string, env *Envelope) (bool, error) {
	if req.NoRefresh {
		return false, &apierrors.Error{
			Kind:    apierrors.KindAuthExpiredUnrecoverable,
			Status:  status,
			Message: env.Message,
		}
	}

	if err := c.checkSession(state); err != nil {
		return false, err
	}

	session := c.sessionHandler()

	if state.authRetried {
		// the replay carried a fresh credential
		if status == http.StatusForbidden {
			return false, &apierrors.Error{
				Kind:    apierrors.KindPermissionDenied,
				Status:  status,
				Message: env.Message,
			}
		}

		e := &apierrors.Error{
			Kind:    apierrors.KindAuthExpiredUnrecoverable,
			Status:  status,
			Message: env.Message,
		}
		if session != nil && state.hasSession {
			session.Expire(ctx, state.generation, e)
		}
		return false, e
	}

	state.authRetried = true

	if c.credentialChanged(ctx, token) {
		c.logger.Debugf("request %s: credential changed during the attempt, replaying", state.id)
		return true, nil
	}

	if session == nil {
		return false, &apierrors.Error{
			Kind:    apierrors.KindAuthExpiredUnrecoverable,
			Status:  status,
			Message: env.Message,
		}
	}

	if err := session.RefreshCredential(ctx); err != nil {
		if apierrors.KindOf(err).Transient() {
			return false, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, &apierrors.Error{
			Kind:   apierrors.KindAuthExpiredUnrecoverable,
			Status: status,
			Err:    err,
		}
	}

	// a refresh that lost to a logout reports success for the newer session
	if err := c.checkSession(state); err != nil {
		return false, err
	}

	return true, nil
}

// checkSession fails requests whose session ended while they were in flight,
// so they are never sent or replayed with another session's credential.
func (c *Client) checkSession(state *requestState) error {
	if !state.hasSession {
		return nil
	}

	session := c.sessionHandler()
	if session == nil || session.Generation() == state.generation {
		return nil
	}

	c.logger.Debugf("request %s: session changed while in flight, dropping", state.id)
	return ErrSessionChanged
}

func (c *Client) token(ctx context.Context) (string, error) {
	cred, err := c.store.Load(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return "", apierrors.New(apierrors.KindLoginRequired, "not logged in")
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return cred.Token, nil
}

func (c *Client) credentialChanged(ctx context.Context, used string) bool {
	cred, err := c.store.Load(ctx)
	if err != nil {
		return false
	}
	return cred.Token != used
}

// send performs one transport attempt. A nil error means a response was
// received, whatever its status.
func (c *Client) send(ctx context.Context, req *Request, body []byte, token string, state *requestState) (int, *Envelope, error) {
	ctx, span := c.tracer.Start(ctx, "client.Client.send")
	defer span.End()

	u := c.resolve(req)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	r.Header.Set("Accept", "application/json")
	r.Header.Set(requestIDHeader, state.id)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(r)
	if err != nil {
		_ = c.monitor.SetDependencyAvailability(map[string]string{"component": backendName}, 0)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		c.logger.Debugf("request %s attempt %d failed: %v", state.id, state.attempts, err)
		return 0, nil, apierrors.Wrap(apierrors.KindNetworkUnreachable, err)
	}
	defer resp.Body.Close()

	_ = c.monitor.SetResponseTimeMetric(
		map[string]string{"route": req.operation(), "status": strconv.Itoa(resp.StatusCode)},
		time.Since(start).Seconds(),
	)

	available := 1.0
	if resp.StatusCode == http.StatusServiceUnavailable {
		available = 0
	}
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": backendName}, available)

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, apierrors.Wrap(apierrors.KindNetworkUnreachable, fmt.Errorf("failed to read response: %w", err))
	}

	env := new(Envelope)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, env); err != nil && resp.StatusCode < http.StatusMultipleChoices {
			return 0, nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, env, nil
}

func (c *Client) resolve(req *Request) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}
	return u.String()
}

func (c *Client) encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.backoffInitial
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = c.backoffInitial << uint(c.maxAttempts)
	b.Reset()

	return b
}

func decode(req *Request, status int, env *Envelope, out any) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return apierrors.FromStatus(status, req.Anonymous, env.Message, env.Field)
	}

	if !env.Succeeded() {
		return &apierrors.Error{
			Kind:    apierrors.KindRejected,
			Status:  status,
			Message: env.Message,
			Field:   env.Field,
		}
	}

	switch o := out.(type) {
	case nil:
	case *Envelope:
		*o = *env
	default:
		if len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func NewClient(cfg Config, store CredentialReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", cfg.BaseURL)
	}

	c := new(Client)

	c.baseURL = base
	c.store = store

	c.maxAttempts = cfg.MaxAttempts
	if c.maxAttempts <= 0 {
		c.maxAttempts = defaultMaxAttempts
	}

	c.backoffInitial = cfg.BackoffInitial
	if c.backoffInitial <= 0 {
		c.backoffInitial = defaultBackoffInitial
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c.http = &http.Client{
		Timeout:   timeout,
		Transport: tracing.NewTransport(cfg.Transport),
	}

	c.sleep = cfg.Sleep
	if c.sleep == nil {
		c.sleep = sleepContext
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
