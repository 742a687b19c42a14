package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
)

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersSetRoleCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersStatsCmd)
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse and manage users (admin area)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		users, err := app.users.List(cmd.Context(), refresh)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s  %-25s  %s\n", u.ID, u.DiscordUsername, u.Role)
		}
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		u, err := app.users.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  role=%s  discord=%s\n", u.DiscordUsername, u.Role, u.DiscordID)
		return nil
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role <id> <player|moderator|admin>",
	Short: "Change a user's role (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		u, err := app.users.UpdateRole(cmd.Context(), args[0], api.Role(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", u.DiscordUsername, u.Role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		if err := app.users.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var usersStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show a user's tournament record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/profile"); err != nil {
			return err
		}
		stats, err := app.users.Stats(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("tournaments: %d  wins: %d  losses: %d  win rate: %.1f%%\n",
			stats.TotalTournaments, stats.Wins, stats.Losses, stats.WinRate*100)
		return nil
	},
}
