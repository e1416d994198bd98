// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/authentication"
	"github.com/linkforge/session-runtime/pkg/session"
)

const federatedTimeout = 5 * time.Minute

var (
	loginEmail    string
	loginGoogle   bool
	passwordStdin bool

	callbackCode  string
	callbackState string

	signupName  string
	signupEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password or with Google",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.restore(ctx); err != nil {
				rt.logger.Warnf("ignoring stored session: %v", err)
			}

			if loginGoogle {
				return federatedLogin(ctx, cmd, rt)
			}

			email := loginEmail
			if email == "" {
				if !isInteractive() {
					return errors.New("--email is required when not running interactively")
				}
				if err := promptInput("Email", &email); err != nil {
					return err
				}
			}

			password, err := secret(passwordStdin, cmd.InOrStdin())
			if err != nil {
				return err
			}

			p, err := rt.session.Login(ctx, email, password)
			if err != nil {
				return err
			}

			printLoggedIn(cmd, p)
			resumeInvite(ctx, cmd, rt)
			return nil
		})
	},
}

var loginCallbackCmd = &cobra.Command{
	Use:   "callback",
	Short: "Complete a Google login with the code and state from the redirect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			p, err := rt.session.CompleteFederatedLogin(ctx, callbackCode, callbackState)
			if err != nil {
				return err
			}

			printLoggedIn(cmd, p)
			resumeInvite(ctx, cmd, rt)
			return nil
		})
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			name, email := signupName, signupEmail
			if isInteractive() {
				if name == "" {
					if err := promptInput("Name", &name); err != nil {
						return err
					}
				}
				if email == "" {
					if err := promptInput("Email", &email); err != nil {
						return err
					}
				}
			}

			password, err := secret(passwordStdin, cmd.InOrStdin())
			if err != nil {
				return err
			}

			p, err := rt.session.Signup(ctx, session.SignupInput{Name: name, Email: email, Password: password})
			if err != nil {
				return err
			}

			printLoggedIn(cmd, p)
			resumeInvite(ctx, cmd, rt)
			return nil
		})
	},
}

// federatedLogin prints the consent URL and waits for the provider redirect
// on the local callback listener. When the port is taken, usually by a
// running agent, the redirect is handled there or by `login callback`.
func federatedLogin(ctx context.Context, cmd *cobra.Command, rt *runtime) error {
	authURL, err := rt.session.BeginFederatedLogin(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Open the following URL to continue:\n\n  %s\n\n", authURL)

	redirect, err := url.Parse(rt.specs.OIDCRedirectURL)
	if err != nil {
		return fmt.Errorf("invalid redirect url: %w", err)
	}

	lis, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		cmd.Printf("Cannot listen on %s (%v).\nFinish with: linkforge login callback --code CODE --state STATE\n", redirect.Host, err)
		return nil
	}

	handler := authentication.NewCallbackHandler(rt.session, rt.tracer, rt.monitor, rt.logger)
	router := chi.NewMux()
	handler.RegisterEndpoints(router)

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 60,
	}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.logger.Errorf("callback listener failed: %v", err)
		}
	}()
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	ctx, cancel := context.WithTimeout(ctx, federatedTimeout)
	defer cancel()

	select {
	case res := <-handler.Results():
		if res.Err != nil {
			return res.Err
		}
		printLoggedIn(cmd, res.Principal)
		resumeInvite(ctx, cmd, rt)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for the login redirect: %w", ctx.Err())
	}
}

func printLoggedIn(cmd *cobra.Command, p *types.Principal) {
	cmd.Printf("Logged in as %s (%s), plan %s\n", p.Name, p.Email, p.Plan)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "log in with Google")
	loginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")

	loginCallbackCmd.Flags().StringVar(&callbackCode, "code", "", "authorization code from the redirect")
	loginCallbackCmd.Flags().StringVar(&callbackState, "state", "", "state from the redirect")
	loginCallbackCmd.MarkFlagRequired("code")
	loginCallbackCmd.MarkFlagRequired("state")

	signupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")

	loginCmd.AddCommand(loginCallbackCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
}
