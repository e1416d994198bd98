// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/linkforge/session-runtime/internal/config"
	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/internal/events"
	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/monitoring/prometheus"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/pkg/apierrors"
	"github.com/linkforge/session-runtime/pkg/authentication"
	"github.com/linkforge/session-runtime/pkg/client"
	"github.com/linkforge/session-runtime/pkg/session"
	"github.com/linkforge/session-runtime/pkg/workspace"
)

const (
	serviceName     = "linkforge"
	shutdownTimeout = 5 * time.Second
)

// runtime is the object graph shared by every command.
type runtime struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	tracer  *tracing.Tracer
	monitor monitoring.MonitorInterface

	redis     *redis.Client
	store     credentials.StoreInterface
	bus       *events.Bus
	client    *client.Client
	provider  *authentication.Provider
	session   *session.Manager
	workspace *workspace.Model
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}
	return specs, nil
}

func newRuntime(ctx context.Context) (*runtime, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	rt := new(runtime)
	rt.specs = specs

	rt.logger = logging.NewLogger(specs.LogLevel)
	rt.monitor = prometheus.NewMonitor(serviceName, rt.logger)
	rt.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, serviceName, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, rt.logger))

	if rt.store, err = rt.newStore(ctx); err != nil {
		rt.Close()
		return nil, err
	}

	rt.bus = events.NewBus(rt.logger)

	rt.client, err = client.NewClient(
		client.Config{
			BaseURL:        specs.APIURL,
			Timeout:        specs.HTTPTimeout,
			MaxAttempts:    specs.MaxAttempts,
			BackoffInitial: specs.BackoffInitial,
		},
		rt.store,
		rt.tracer,
		rt.monitor,
		rt.logger,
	)
	if err != nil {
		rt.Close()
		return nil, err
	}

	// a nil *Provider must not reach the manager as a non-nil interface
	var provider session.FederatedProviderInterface
	if specs.OIDCClientID != "" {
		rt.provider, err = authentication.NewProvider(
			ctx,
			authentication.Config{
				Issuer:      specs.OIDCIssuer,
				ClientID:    specs.OIDCClientID,
				RedirectURL: specs.OIDCRedirectURL,
				Scopes:      specs.OIDCScopes,
			},
			rt.tracer,
			rt.monitor,
			rt.logger,
		)
		if err != nil {
			rt.logger.Warnf("federated login unavailable: %v", err)
		} else {
			provider = rt.provider
		}
	}

	rt.session = session.NewManager(
		session.Config{
			RefreshSkew:       specs.RefreshSkew,
			RefreshRetryDelay: specs.RefreshRetryDelay,
			CredentialTTL:     specs.CredentialTTL,
		},
		rt.store,
		rt.client,
		provider,
		rt.bus,
		rt.tracer,
		rt.monitor,
		rt.logger,
	)
	rt.client.RegisterSessionHandler(rt.session)

	rt.workspace = workspace.NewModel(rt.client, rt.session, rt.store, rt.bus, rt.tracer, rt.monitor, rt.logger)

	return rt, nil
}

func (rt *runtime) newStore(ctx context.Context) (credentials.StoreInterface, error) {
	switch rt.specs.CredentialBackend {
	case "file":
		path := rt.specs.CredentialFile
		if path == "" {
			p, err := credentials.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return credentials.NewFileStore(path, rt.tracer, rt.logger), nil
	case "redis":
		c, err := credentials.NewRedisClient(ctx, rt.specs.RedisAddr, rt.specs.RedisPassword, rt.specs.RedisDB)
		if err != nil {
			return nil, err
		}
		rt.redis = c
		return credentials.NewRedisStore(c, rt.specs.RedisKeyPrefix, rt.tracer, rt.logger), nil
	case "memory":
		return credentials.NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("%w: %q", credentials.ErrInvalidBackend, rt.specs.CredentialBackend)
}

// restore loads the stored session. Commands that need a principal call
// requireSession afterwards.
func (rt *runtime) restore(ctx context.Context) error {
	if err := rt.session.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

func (rt *runtime) requireSession(ctx context.Context) error {
	if err := rt.restore(ctx); err != nil {
		return err
	}
	if rt.session.Status() != session.StatusAuthenticated {
		return apierrors.ErrLoginRequired
	}
	return nil
}

// applyTeam switches the workspace to the --team scope when one was given.
func (rt *runtime) applyTeam(ctx context.Context) error {
	if teamID == "" {
		return nil
	}
	if _, err := rt.workspace.LoadTeams(ctx); err != nil {
		return err
	}
	return rt.workspace.SwitchToTeam(teamID)
}

func (rt *runtime) Close() {
	if rt.workspace != nil {
		rt.workspace.Close()
	}
	if rt.session != nil {
		rt.session.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if rt.tracer != nil {
		if err := rt.tracer.Shutdown(ctx); err != nil {
			rt.logger.Warnf("failed to flush traces: %v", err)
		}
	}
	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			rt.logger.Warnf("failed to close redis client: %v", err)
		}
	}

	_ = rt.logger.Sync()
}

// withRuntime builds the runtime for a single command invocation.
func withRuntime(ctx context.Context, f func(context.Context, *runtime) error) error {
	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	return f(ctx, rt)
}

// requireTeam returns the --team value for commands that act on one team.
func requireTeam() (string, error) {
	if teamID == "" {
		return "", errors.New("--team is required for this command")
	}
	return teamID, nil
}

// userError renders a runtime error the way a user should read it.
func userError(err error) string {
	var e *apierrors.Error
	if errors.As(err, &e) {
		return "Error: " + apierrors.UserMessage(err)
	}
	return "Error: " + err.Error()
}
