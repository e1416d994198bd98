// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Show the workspace content commands act on",
	Long:  `Show the active scope. Use --team to resolve a team scope for this invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.requireSession(ctx); err != nil {
				return err
			}
			if err := rt.applyTeam(ctx); err != nil {
				return err
			}

			scope := rt.workspace.Scope()
			scopeType, scopeID := scope.Params()

			w := newTable(cmd)
			row(w, "SCOPE", scopeType)
			row(w, "ID", scopeID)
			if !scope.IsPersonal() {
				row(w, "ROLE", scope.Role)
			}
			row(w, "QUERY", rt.workspace.ScopeQuery().Encode())
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}
