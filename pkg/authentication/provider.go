// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
)

var _ ProviderInterface = (*Provider)(nil)

var (
	otelHTTPClient = http.Client{Transport: tracing.NewTransport(http.DefaultTransport)}
)

type Config struct {
	Issuer      string
	ClientID    string
	RedirectURL string
	Scopes      []string
}

// Provider builds consent URLs for the federated identity provider. The
// code exchange itself is done by the backend, so no client secret is held.
type Provider struct {
	oauth *oauth2.Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Provider) AuthCodeURL(state, verifier string) string {
	return p.oauth.AuthCodeURL(
		state,
		oauth2.AccessTypeOnline,
		oauth2.S256ChallengeOption(verifier),
	)
}

func (p *Provider) RedirectURL() string {
	return p.oauth.RedirectURL
}

// NewProvider discovers the provider endpoints from the issuer's well-known configuration
func NewProvider(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Provider, error) {
	ctx, span := tracer.Start(ctx, "authentication.NewProvider")
	defer span.End()

	if cfg.ClientID == "" {
		return nil, fmt.Errorf("client id is required for federated login")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	discovered, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	logger.Debugf("discovered OIDC provider for issuer %s", cfg.Issuer)

	return NewStaticProvider(discovered.Endpoint(), cfg, tracer, monitor, logger), nil
}

// NewStaticProvider uses the given endpoints without discovery
func NewStaticProvider(endpoint oauth2.Endpoint, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Provider {
	p := new(Provider)

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "email", "profile"}
	}

	p.oauth = &oauth2.Config{
		ClientID:    cfg.ClientID,
		Endpoint:    endpoint,
		RedirectURL: cfg.RedirectURL,
		Scopes:      scopes,
	}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
