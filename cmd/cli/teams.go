package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
)

var (
	createTeamName string
	createTeamTag  string
	createTeamGame string
)

func init() {
	teamsCreateCmd.Flags().StringVar(&createTeamName, "name", "", "Team name")
	teamsCreateCmd.Flags().StringVar(&createTeamTag, "tag", "", "Team tag")
	teamsCreateCmd.Flags().StringVar(&createTeamGame, "game", "", "Game ID")
	teamsCreateCmd.MarkFlagRequired("name")
	teamsCreateCmd.MarkFlagRequired("game")

	teamsCmd.AddCommand(teamsListCmd)
	teamsCmd.AddCommand(teamsGetCmd)
	teamsCmd.AddCommand(teamsCreateCmd)
	teamsCmd.AddCommand(teamsDeleteCmd)
	teamsCmd.AddCommand(teamsAddMemberCmd)
	teamsCmd.AddCommand(teamsRemoveMemberCmd)
	teamsCmd.AddCommand(teamsTransferCmd)
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Browse and manage teams",
}

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams"); err != nil {
			return err
		}
		teams, err := app.teams.List(cmd.Context(), refresh)
		if err != nil {
			return err
		}
		for _, t := range teams {
			tag := ""
			if t.Tag != nil {
				tag = "[" + *t.Tag + "]"
			}
			fmt.Printf("%s  %-25s %-8s  game=%s\n", t.ID, t.Name, tag, t.GameID)
		}
		return nil
	},
}

var teamsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a team and its members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams/"+args[0]); err != nil {
			return err
		}
		t, err := app.teams.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", t.Name, t.ID)
		if t.Game != nil {
			fmt.Printf("game: %s\n", t.Game.Name)
		}
		if t.Captain != nil {
			fmt.Printf("captain: %s\n", t.Captain.DiscordUsername)
		}
		for _, m := range t.Members {
			name := m.UserID
			if m.User != nil {
				name = m.User.DiscordUsername
			}
			fmt.Printf("  %-25s  %s\n", name, m.Role)
		}
		return nil
	},
}

var teamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams"); err != nil {
			return err
		}
		req := api.CreateTeamRequest{Name: createTeamName, GameID: createTeamGame}
		if createTeamTag != "" {
			req.Tag = &createTeamTag
		}
		t, err := app.teams.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created team %s (%s)\n", t.Name, t.ID)
		return nil
	},
}

var teamsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams/"+args[0]); err != nil {
			return err
		}
		if err := app.teams.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var teamsAddMemberCmd = &cobra.Command{
	Use:   "add-member <team-id> <user-id>",
	Short: "Add a member to a team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams/"+args[0]); err != nil {
			return err
		}
		t, err := app.teams.AddMember(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Team %s now has %d members\n", t.Name, len(t.Members))
		return nil
	},
}

var teamsRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member <team-id> <user-id>",
	Short: "Remove a member from a team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams/"+args[0]); err != nil {
			return err
		}
		t, err := app.teams.RemoveMember(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Team %s now has %d members\n", t.Name, len(t.Members))
		return nil
	},
}

var teamsTransferCmd = &cobra.Command{
	Use:   "transfer-captain <team-id> <user-id>",
	Short: "Transfer team captaincy to another member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/teams/"+args[0]); err != nil {
			return err
		}
		t, err := app.teams.TransferCaptaincy(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if t.Captain != nil {
			fmt.Printf("Captain of %s is now %s\n", t.Name, t.Captain.DiscordUsername)
		}
		return nil
	},
}
