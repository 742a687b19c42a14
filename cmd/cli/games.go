package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
)

var (
	createGameName string
	createGameSize int
)

func init() {
	gamesCreateCmd.Flags().StringVar(&createGameName, "name", "", "Game name")
	gamesCreateCmd.Flags().IntVar(&createGameSize, "team-size", 1, "Default team size")
	gamesCreateCmd.MarkFlagRequired("name")

	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesGetCmd)
	gamesCmd.AddCommand(gamesCreateCmd)
	gamesCmd.AddCommand(gamesDeleteCmd)
	gamesCmd.AddCommand(gamesToggleCmd)
	rootCmd.AddCommand(gamesCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Browse and manage games",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		games, err := app.games.List(cmd.Context(), refresh)
		if err != nil {
			return err
		}
		for _, g := range games {
			active := " "
			if g.IsActive {
				active = "*"
			}
			fmt.Printf("%s %s  %-25s  team size %d\n", active, g.ID, g.Name, g.TeamSize)
		}
		return nil
	},
}

var gamesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		g, err := app.games.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)  slug=%s  team size=%d  active=%t\n", g.Name, g.ID, g.Slug, g.TeamSize, g.IsActive)
		if g.Description != nil {
			fmt.Println(*g.Description)
		}
		return nil
	},
}

var gamesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a game (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		g, err := app.games.Create(cmd.Context(), api.CreateGameRequest{
			Name:     createGameName,
			TeamSize: createGameSize,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created game %s (%s)\n", g.Name, g.ID)
		return nil
	},
}

var gamesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a game (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		if err := app.games.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var gamesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a game's active flag (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		g, err := app.games.ToggleStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Game %s active=%t\n", g.Name, g.IsActive)
		return nil
	},
}
