package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
)

var (
	tournamentFilter string

	createTournamentName   string
	createTournamentGame   string
	createTournamentFormat string
	createTournamentMax    int
	createTournamentSize   int
	registerTeamID         string
)

func init() {
	tournamentsListCmd.Flags().StringVar(&tournamentFilter, "status", "", "Filter: active, upcoming or completed")

	tournamentsCreateCmd.Flags().StringVar(&createTournamentName, "name", "", "Tournament name")
	tournamentsCreateCmd.Flags().StringVar(&createTournamentGame, "game", "", "Game ID")
	tournamentsCreateCmd.Flags().StringVar(&createTournamentFormat, "format", string(api.FormatSingleElimination), "Format: single_elimination, double_elimination, round_robin or swiss")
	tournamentsCreateCmd.Flags().IntVar(&createTournamentMax, "max-participants", 8, "Maximum number of participants")
	tournamentsCreateCmd.Flags().IntVar(&createTournamentSize, "team-size", 1, "Team size")
	tournamentsCreateCmd.MarkFlagRequired("name")
	tournamentsCreateCmd.MarkFlagRequired("game")

	tournamentsRegisterCmd.Flags().StringVar(&registerTeamID, "team", "", "Team ID to register with")

	tournamentsCmd.AddCommand(tournamentsListCmd)
	tournamentsCmd.AddCommand(tournamentsGetCmd)
	tournamentsCmd.AddCommand(tournamentsCreateCmd)
	tournamentsCmd.AddCommand(tournamentsDeleteCmd)
	tournamentsCmd.AddCommand(tournamentsRegisterCmd)
	tournamentsCmd.AddCommand(tournamentsParticipantsCmd)
	tournamentsCmd.AddCommand(tournamentsStartCmd)
	tournamentsCmd.AddCommand(tournamentsCheckinCmd)
	rootCmd.AddCommand(tournamentsCmd)
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Browse and manage tournaments",
}

var tournamentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		if _, err := app.tournaments.List(cmd.Context(), refresh); err != nil {
			return err
		}

		var tournaments []api.Tournament
		switch tournamentFilter {
		case "active":
			tournaments = app.tournaments.Active()
		case "upcoming":
			tournaments = app.tournaments.Upcoming()
		case "completed":
			tournaments = app.tournaments.Completed()
		case "":
			tournaments, _ = app.tournaments.List(cmd.Context(), false)
		default:
			return fmt.Errorf("unknown status filter %q", tournamentFilter)
		}

		for _, t := range tournaments {
			fmt.Printf("%s  %-30s  %-14s  %s\n", t.ID, t.Name, t.Status, t.Format)
		}
		return nil
	},
}

var tournamentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/"+args[0]); err != nil {
			return err
		}
		t, err := app.tournaments.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", t.Name, t.ID)
		fmt.Printf("status: %s  format: %s  max: %d  team size: %d\n", t.Status, t.Format, t.MaxParticipants, t.TeamSize)
		if t.Game != nil {
			fmt.Printf("game: %s\n", t.Game.Name)
		}
		if t.Description != nil {
			fmt.Printf("%s\n", *t.Description)
		}
		return nil
	},
}

var tournamentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tournament (moderator or admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/create"); err != nil {
			return err
		}
		t, err := app.tournaments.Create(cmd.Context(), api.CreateTournamentRequest{
			Name:            createTournamentName,
			GameID:          createTournamentGame,
			Format:          api.TournamentFormat(createTournamentFormat),
			MaxParticipants: createTournamentMax,
			TeamSize:        createTournamentSize,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created tournament %s (%s)\n", t.Name, t.ID)
		return nil
	},
}

var tournamentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tournament (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/admin"); err != nil {
			return err
		}
		if err := app.tournaments.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var tournamentsRegisterCmd = &cobra.Command{
	Use:   "register <id>",
	Short: "Register for a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/"+args[0]); err != nil {
			return err
		}
		req := api.RegisterRequest{}
		if registerTeamID != "" {
			req.TeamID = &registerTeamID
		}
		p, err := app.tournaments.Register(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Printf("Registered, participant %s (%s)\n", p.ID, p.Status)
		return nil
	},
}

var tournamentsParticipantsCmd = &cobra.Command{
	Use:   "participants <id>",
	Short: "List a tournament's participants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/"+args[0]); err != nil {
			return err
		}
		participants, err := app.tournaments.Participants(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, p := range participants {
			name := "-"
			if p.User != nil {
				name = p.User.DiscordUsername
			} else if p.Team != nil {
				name = p.Team.Name
			}
			seed := "-"
			if p.Seed != nil {
				seed = fmt.Sprintf("%d", *p.Seed)
			}
			fmt.Printf("%s  %-25s  %-13s  seed=%s\n", p.ID, name, p.Status, seed)
		}
		return nil
	},
}

var tournamentsStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a tournament and generate brackets (moderator or admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/create"); err != nil {
			return err
		}
		t, err := app.tournaments.Start(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Tournament %s is now %s\n", t.Name, t.Status)
		return nil
	},
}

var tournamentsCheckinCmd = &cobra.Command{
	Use:   "checkin <id>",
	Short: "Check in to a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/"+args[0]); err != nil {
			return err
		}
		p, err := app.tournaments.CheckIn(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Checked in, participant %s (%s)\n", p.ID, p.Status)
		return nil
	},
}
