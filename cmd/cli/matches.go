package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
)

var (
	scoreP1     int
	scoreP2     int
	scoreWinner string
)

func init() {
	matchScoreCmd.Flags().IntVar(&scoreP1, "p1", 0, "Score for participant 1")
	matchScoreCmd.Flags().IntVar(&scoreP2, "p2", 0, "Score for participant 2")
	matchScoreCmd.Flags().StringVar(&scoreWinner, "winner", "", "Winning participant ID")

	matchCmd.AddCommand(matchGetCmd)
	matchCmd.AddCommand(matchScoreCmd)
	matchCmd.AddCommand(matchStartCmd)
	matchCmd.AddCommand(matchCompleteCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(bracketCmd)
}

var bracketCmd = &cobra.Command{
	Use:   "bracket <tournament-id>",
	Short: "Render a tournament's brackets round by round",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments/"+args[0]); err != nil {
			return err
		}
		brackets, err := app.matches.Brackets(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, b := range brackets {
			name := "Bracket"
			if b.Name != nil {
				name = *b.Name
			}
			kind := ""
			if b.Type != nil {
				kind = " (" + string(*b.Type) + ")"
			}
			fmt.Printf("%s%s (%d rounds)\n", name, kind, b.RoundCount)
			for _, round := range api.GroupMatchesByRound(b.Matches) {
				fmt.Printf("  Round %d\n", round.Number)
				for _, m := range round.Matches {
					fmt.Printf("    #%d  %s\n", m.MatchNumber, formatMatch(m))
				}
			}
		}
		return nil
	},
}

func formatMatch(m api.Match) string {
	side := func(p *api.Participant, id *string) string {
		if p != nil {
			if p.User != nil {
				return p.User.DiscordUsername
			}
			if p.Team != nil {
				return p.Team.Name
			}
		}
		if id != nil {
			return *id
		}
		return "TBD"
	}
	return fmt.Sprintf("%s %d - %d %s  [%s]",
		side(m.Participant1, m.Participant1ID), m.ScoreParticipant1,
		m.ScoreParticipant2, side(m.Participant2, m.Participant2ID), m.Status)
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Inspect and score matches",
}

var matchGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		m, err := app.matches.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatMatch(*m))
		return nil
	},
}

var matchScoreCmd = &cobra.Command{
	Use:   "score <id>",
	Short: "Update a match's score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		req := api.UpdateScoreRequest{ScoreParticipant1: scoreP1, ScoreParticipant2: scoreP2}
		if scoreWinner != "" {
			req.WinnerID = &scoreWinner
		}
		m, err := app.matches.UpdateScore(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Println(formatMatch(*m))
		return nil
	},
}

var matchStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		m, err := app.matches.Start(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatMatch(*m))
		return nil
	},
}

var matchCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/tournaments"); err != nil {
			return err
		}
		m, err := app.matches.Complete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatMatch(*m))
		return nil
	},
}
