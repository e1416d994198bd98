// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/linkforge/session-runtime/internal/credentials"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

func newLoginBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		if body.Password != "secret-x" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"token":     "tok-x",
			"expiresAt": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
			"user":      map[string]any{"id": "x", "name": "X", "email": body.Email, "plan": "FREE"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// run executes the root command with fresh flag state.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	teamID, loginEmail, loginGoogle, passwordStdin = "", "", false, false

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoginCommand(t *testing.T) {
	server := newLoginBackend(t)

	t.Setenv("API_URL", server.URL)
	t.Setenv("CREDENTIAL_BACKEND", "memory")

	tests := []struct {
		name     string
		password string
		expected string
		err      error
	}{
		{name: "valid password", password: "secret-x\n", expected: "Logged in as X (x@example.com), plan FREE"},
		{name: "wrong password", password: "nope\n", err: apierrors.ErrInvalidCredentials},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.password, "login", "--email", "x@example.com", "--password-stdin")

			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("expected %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, test.expected) {
				t.Errorf("expected %q in output, got %q", test.expected, out)
			}
		})
	}
}

func TestCommandsRequireSession(t *testing.T) {
	server := newLoginBackend(t)

	t.Setenv("API_URL", server.URL)
	t.Setenv("CREDENTIAL_BACKEND", "memory")

	for _, args := range [][]string{
		{"workspace"},
		{"refresh"},
		{"team", "list"},
		{"team", "members", "--team", "t1"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, "", args...); !errors.Is(err, apierrors.ErrLoginRequired) {
				t.Errorf("expected LoginRequired, got %v", err)
			}
		})
	}
}

func TestWhoamiAnonymous(t *testing.T) {
	server := newLoginBackend(t)

	t.Setenv("API_URL", server.URL)
	t.Setenv("CREDENTIAL_BACKEND", "memory")

	out, err := run(t, "", "whoami")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInvalidCredentialBackend(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:1")
	t.Setenv("CREDENTIAL_BACKEND", "floppy")

	if _, err := run(t, "", "whoami"); !errors.Is(err, credentials.ErrInvalidBackend) {
		t.Errorf("expected ErrInvalidBackend, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "App Version: dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRequireTeam(t *testing.T) {
	teamID = ""
	if _, err := requireTeam(); err == nil {
		t.Error("expected an error without --team")
	}

	teamID = "t1"
	defer func() { teamID = "" }()

	id, err := requireTeam()
	if err != nil || id != "t1" {
		t.Errorf("expected t1, got %q %v", id, err)
	}
}

func TestReadSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "hunter2\n", expected: "hunter2"},
		{input: "hunter2\r\n", expected: "hunter2"},
		{input: "no newline", expected: "no newline"},
		{input: "", expected: ""},
	}

	for _, test := range tests {
		got, err := readSecret(strings.NewReader(test.input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}
}

func TestUserError(t *testing.T) {
	if got := userError(apierrors.ErrLoginRequired); got != "Error: Please log in to continue." {
		t.Errorf("unexpected message %q", got)
	}
	if got := userError(errors.New("--team is required for this command")); got != "Error: --team is required for this command" {
		t.Errorf("unexpected message %q", got)
	}
}
