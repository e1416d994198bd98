// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/linkforge/session-runtime/internal/types"
	"github.com/linkforge/session-runtime/pkg/apierrors"
)

var assumeYes bool

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams and their members",
}

// teamRun wraps a team command that needs a logged in session.
func teamRun(f func(context.Context, *cobra.Command, []string, *runtime) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.requireSession(ctx); err != nil {
				return err
			}
			return f(ctx, cmd, args, rt)
		})
	}
}

var listTeamsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the teams you belong to",
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		teams, err := rt.workspace.LoadTeams(ctx)
		if err != nil {
			return err
		}

		w := newTable(cmd, "ID", "NAME", "ROLE", "PLAN")
		for _, t := range teams {
			row(w, t.ID, t.Name, t.Role, t.Plan)
		}
		return w.Flush()
	}),
}

var createTeamCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a team, you become its owner",
	Args:  cobra.ExactArgs(1),
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		team, err := rt.workspace.CreateTeam(ctx, args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Team created: %s (ID: %s)\n", team.Name, team.ID)
		return nil
	}),
}

var updateTeamCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Rename the team selected with --team",
	Args:  cobra.ExactArgs(1),
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		team, err := rt.workspace.UpdateTeam(ctx, id, args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Team updated: %s (ID: %s)\n", team.Name, team.ID)
		return nil
	}),
}

var deleteTeamCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the team selected with --team",
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		if !assumeYes {
			if !isInteractive() {
				return errors.New("refusing to delete without --yes when not running interactively")
			}
			ok, err := promptConfirm("Delete team " + id + "? This cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := rt.workspace.DeleteTeam(ctx, id); err != nil {
			return err
		}

		cmd.Printf("Team deleted: %s\n", id)
		return nil
	}),
}

var leaveTeamCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave the team selected with --team",
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		if err := rt.workspace.LeaveTeam(ctx, id); err != nil {
			return err
		}

		cmd.Printf("Left team %s\n", id)
		return nil
	}),
}

var listMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the members of the team selected with --team",
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		members, err := rt.workspace.ListMembers(ctx, id)
		if err != nil {
			return err
		}

		w := newTable(cmd, "USER_ID", "EMAIL", "ROLE", "ACTIVE")
		for _, m := range members {
			row(w, m.UserID, m.Email, m.Role, m.Active)
		}
		return w.Flush()
	}),
}

var inviteCmd = &cobra.Command{
	Use:   "invite [email] [role]",
	Short: "Invite a user to the team selected with --team",
	Args:  cobra.ExactArgs(2),
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		invite, err := rt.workspace.InviteUser(ctx, id, args[0], args[1])
		if err != nil {
			return err
		}

		cmd.Printf("Invited %s as %s, invite token: %s\n", invite.Email, invite.Role, invite.Token)
		return nil
	}),
}

// accept does not require a session: without one the token is parked and
// accepted after the next login.
var acceptInviteCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept a team invite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd.Context(), func(ctx context.Context, rt *runtime) error {
			if err := rt.restore(ctx); err != nil {
				return err
			}

			member, err := rt.workspace.AcceptInvite(ctx, args[0])
			if err != nil {
				if errors.Is(err, apierrors.ErrLoginRequired) {
					cmd.Println("Invite saved, it will be accepted after you log in")
					return nil
				}
				return err
			}

			printJoined(cmd, member)
			return nil
		})
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove-member [user-id]",
	Short: "Remove a member from the team selected with --team",
	Args:  cobra.ExactArgs(1),
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		if err := rt.workspace.RemoveMember(ctx, id, args[0]); err != nil {
			return err
		}

		cmd.Printf("Removed %s from %s\n", args[0], id)
		return nil
	}),
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [user-id] [role]",
	Short: "Change the role of a member of the team selected with --team",
	Args:  cobra.ExactArgs(2),
	RunE: teamRun(func(ctx context.Context, cmd *cobra.Command, args []string, rt *runtime) error {
		id, err := requireTeam()
		if err != nil {
			return err
		}

		member, err := rt.workspace.UpdateMemberRole(ctx, id, args[0], args[1])
		if err != nil {
			return err
		}

		cmd.Printf("%s is now %s\n", member.UserID, member.Role)
		return nil
	}),
}

func printJoined(cmd *cobra.Command, m *types.Member) {
	cmd.Printf("Joined team %s as %s\n", m.TeamID, m.Role)
}

// resumeInvite accepts an invite parked before the login that just happened.
// Failures are reported without failing the login.
func resumeInvite(ctx context.Context, cmd *cobra.Command, rt *runtime) {
	member, err := rt.workspace.ResumePendingInvite(ctx)
	if err != nil {
		cmd.PrintErrln("Could not accept the saved invite: " + apierrors.UserMessage(err))
		return
	}
	if member != nil {
		printJoined(cmd, member)
	}
}

func init() {
	deleteTeamCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	teamCmd.AddCommand(listTeamsCmd)
	teamCmd.AddCommand(createTeamCmd)
	teamCmd.AddCommand(updateTeamCmd)
	teamCmd.AddCommand(deleteTeamCmd)
	teamCmd.AddCommand(leaveTeamCmd)
	teamCmd.AddCommand(listMembersCmd)
	teamCmd.AddCommand(inviteCmd)
	teamCmd.AddCommand(acceptInviteCmd)
	teamCmd.AddCommand(removeMemberCmd)
	teamCmd.AddCommand(setRoleCmd)

	rootCmd.AddCommand(teamCmd)
}
