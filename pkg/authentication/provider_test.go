// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"golang.org/x/oauth2"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/monitoring"
	"github.com/linkforge/session-runtime/internal/tracing"
)

func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                                srv.URL,
			"authorization_endpoint":                srv.URL + "/authorize",
			"token_endpoint":                        srv.URL + "/token",
			"jwks_uri":                              srv.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))

	return srv
}

func TestNewProviderDiscovery(t *testing.T) {
	srv := newDiscoveryServer(t)
	defer srv.Close()

	p, err := NewProvider(
		context.Background(),
		Config{Issuer: srv.URL, ClientID: "client-1", RedirectURL: "http://localhost:8765/auth/callback"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("linkforge"),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verifier := oauth2.GenerateVerifier()
	raw := p.AuthCodeURL("state-1", verifier)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid consent url %q: %v", raw, err)
	}

	if u.Path != "/authorize" {
		t.Errorf("expected discovered authorization endpoint, got %s", u.Path)
	}

	q := u.Query()
	expected := map[string]string{
		"client_id":             "client-1",
		"state":                 "state-1",
		"redirect_uri":          "http://localhost:8765/auth/callback",
		"response_type":         "code",
		"code_challenge_method": "S256",
		"code_challenge":        oauth2.S256ChallengeFromVerifier(verifier),
	}
	for k, v := range expected {
		if q.Get(k) != v {
			t.Errorf("expected %s=%q, got %q", k, v, q.Get(k))
		}
	}

	if p.RedirectURL() != "http://localhost:8765/auth/callback" {
		t.Errorf("unexpected redirect url %s", p.RedirectURL())
	}
}

func TestNewProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing client id", cfg: Config{Issuer: srv.URL}},
		{name: "discovery failure", cfg: Config{Issuer: srv.URL, ClientID: "client-1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewProvider(context.Background(), test.cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("linkforge"), logging.NewNoopLogger())
			if err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestStaticProviderDefaultScopes(t *testing.T) {
	p := NewStaticProvider(
		oauth2.Endpoint{AuthURL: "https://idp.example.com/auth"},
		Config{ClientID: "client-1"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("linkforge"),
		logging.NewNoopLogger(),
	)

	u, err := url.Parse(p.AuthCodeURL("s", oauth2.GenerateVerifier()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope := u.Query().Get("scope"); scope != "openid email profile" {
		t.Errorf("unexpected scope %q", scope)
	}
}
