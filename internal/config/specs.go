// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the environment configuration shared by the CLI and the agent
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	APIURL string `envconfig:"api_url" required:"true"`

	CredentialBackend string `envconfig:"credential_backend" default:"file"`
	CredentialFile    string `envconfig:"credential_file"`

	RedisAddr      string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword  string `envconfig:"redis_password"`
	RedisDB        int    `envconfig:"redis_db" default:"0"`
	RedisKeyPrefix string `envconfig:"redis_key_prefix" default:"linkforge"`

	OIDCIssuer      string   `envconfig:"oidc_issuer" default:"https://accounts.google.com"`
	OIDCClientID    string   `envconfig:"oidc_client_id"`
	OIDCRedirectURL string   `envconfig:"oidc_redirect_url" default:"http://localhost:8765/auth/callback"`
	OIDCScopes      []string `envconfig:"oidc_scopes" default:"openid,email,profile"`

	HTTPTimeout    time.Duration `envconfig:"http_timeout" default:"30s"`
	MaxAttempts    int           `envconfig:"max_attempts" default:"3"`
	BackoffInitial time.Duration `envconfig:"backoff_initial" default:"2s"`

	RefreshSkew       time.Duration `envconfig:"refresh_skew" default:"1m"`
	RefreshRetryDelay time.Duration `envconfig:"refresh_retry_delay" default:"30s"`
	CredentialTTL     time.Duration `envconfig:"credential_ttl" default:"1h"`

	HeartbeatSchedule string `envconfig:"heartbeat_schedule" default:"@every 5m"`

	Port           int      `envconfig:"port" default:"8765"`
	AllowedOrigins []string `envconfig:"allowed_origins" default:"http://localhost:*,http://127.0.0.1:*"`
}
