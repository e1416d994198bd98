// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// teamID selects the team scope for a single invocation, it is never persisted
var teamID string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "linkforge",
	Short:         "LinkForge session runtime",
	Long:          `Sign in to LinkForge, manage teams and keep a local session alive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(userError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&teamID, "team", "", "team ID to act on instead of the personal workspace")
}
