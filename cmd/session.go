// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/linkforge/session-runtime/pkg/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and forget the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.restore(ctx); err != nil {
				rt.logger.Warnf("logging out without a restored session: %v", err)
			}
			if err := rt.session.Logout(ctx); err != nil {
				return err
			}

			cmd.Println("Logged out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in principal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.restore(ctx); err != nil {
				return err
			}
			if rt.session.Status() != session.StatusAuthenticated {
				cmd.Println("Not logged in")
				return nil
			}

			p := rt.session.Principal()

			w := newTable(cmd)
			row(w, "ID", p.ID)
			row(w, "NAME", p.Name)
			row(w, "EMAIL", p.Email)
			row(w, "PLAN", p.Plan)
			row(w, "FEDERATED", p.Federated)
			row(w, "EXPIRES", rt.session.ExpiresAt().Local().Format(time.RFC1123))
			return w.Flush()
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the stored credential for a fresh one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.requireSession(ctx); err != nil {
				return err
			}
			if err := rt.session.RefreshCredential(ctx); err != nil {
				return err
			}

			cmd.Printf("Session valid until %s\n", rt.session.ExpiresAt().Local().Format(time.RFC1123))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(refreshCmd)
}
