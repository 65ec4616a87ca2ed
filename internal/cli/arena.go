package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/wire"
)

// ArenaCmd returns the arena command group.
func ArenaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Manage teams, players, and matches",
	}

	cmd.AddCommand(arenaTeamAddCmd())
	cmd.AddCommand(arenaTeamListCmd())
	cmd.AddCommand(arenaPlayerSignCmd())
	cmd.AddCommand(arenaScheduleCmd())
	cmd.AddCommand(arenaResultCmd())
	cmd.AddCommand(arenaCancelCmd())
	cmd.AddCommand(arenaAppearanceCmd())
	cmd.AddCommand(arenaStandingsCmd())
	cmd.AddCommand(arenaPlayerStatsCmd())

	return cmd
}

func arenaTeamAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team-add [name]",
		Short: "Register a new team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, _ := cmd.Flags().GetString("tag")

			team, err := wire.ArenaService().AddTeam(context.Background(), args[0], tag)
			if err != nil {
				return fmt.Errorf("failed to add team: %w", err)
			}

			fmt.Printf("✓ Added team %d: %s [%s]\n", team.ID, team.Name, team.Tag)
			return nil
		},
	}
	cmd.Flags().String("tag", "", "Short team tag")
	return cmd
}

func arenaTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team-list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := wire.ArenaService().ListTeams(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}
			if len(teams) == 0 {
				fmt.Println("No teams found")
				return nil
			}

			fmt.Printf("\n%-5s %-20s %s\n", "ID", "NAME", "TAG")
			fmt.Println("──────────────────────────────")
			for _, t := range teams {
				fmt.Printf("%-5d %-20s %s\n", t.ID, t.Name, t.Tag)
			}
			fmt.Println()
			return nil
		},
	}
}

func arenaPlayerSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player-sign [team-id] [handle]",
		Short: "Sign a player to a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid team id %q", args[0])
			}

			player, err := wire.ArenaService().SignPlayer(context.Background(), teamID, args[1])
			if err != nil {
				return fmt.Errorf("failed to sign player: %w", err)
			}

			fmt.Printf("✓ Signed player %d: %s (team %d)\n", player.ID, player.Handle, player.TeamID)
			return nil
		},
	}
}

func arenaScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [home-team-id] [away-team-id]",
		Short: "Schedule a match between two teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			homeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid home team id %q", args[0])
			}
			awayID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid away team id %q", args[1])
			}

			match, err := wire.ArenaService().ScheduleMatch(context.Background(), homeID, awayID)
			if err != nil {
				return fmt.Errorf("failed to schedule match: %w", err)
			}

			fmt.Printf("✓ Scheduled match %d: team %d vs team %d\n", match.ID, match.HomeTeamID, match.AwayTeamID)
			return nil
		},
	}
}

func arenaResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result [match-id] [home-score] [away-score]",
		Short: "Record the final score of a scheduled match",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 3)
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid number %q", a)
				}
				ids[i] = n
			}

			if err := wire.ArenaService().RecordResult(context.Background(), ids[0], ids[1], ids[2]); err != nil {
				return fmt.Errorf("failed to record result: %w", err)
			}
			fmt.Printf("✓ Match %d: %d-%d\n", ids[0], ids[1], ids[2])
			return nil
		},
	}
}

func arenaCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [match-id]",
		Short: "Cancel a scheduled match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid match id %q", args[0])
			}
			if err := wire.ArenaService().CancelMatch(context.Background(), id); err != nil {
				return fmt.Errorf("failed to cancel match: %w", err)
			}
			fmt.Printf("✓ Cancelled match %d\n", id)
			return nil
		},
	}
}

func arenaAppearanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appearance [match-id] [player-id]",
		Short: "Record a player's appearance in a played match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid match id %q", args[0])
			}
			playerID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player id %q", args[1])
			}
			goals, _ := cmd.Flags().GetInt("goals")

			if err := wire.ArenaService().RecordAppearance(context.Background(), matchID, playerID, goals); err != nil {
				return fmt.Errorf("failed to record appearance: %w", err)
			}
			fmt.Printf("✓ Recorded appearance: player %d in match %d (%d goals)\n", playerID, matchID, goals)
			return nil
		},
	}
	cmd.Flags().Int("goals", 0, "Goals scored")
	return cmd
}

func arenaStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the league table",
		RunE: func(cmd *cobra.Command, args []string) error {
			standings, err := wire.ArenaService().Standings(context.Background())
			if err != nil {
				return fmt.Errorf("failed to compute standings: %w", err)
			}
			if len(standings) == 0 {
				fmt.Println("No teams found")
				return nil
			}

			fmt.Printf("\n%-5s %-3s %-3s %-3s %-3s %-4s %-4s %-4s %s\n",
				"TEAM", "P", "W", "D", "L", "GF", "GA", "GD", "PTS")
			fmt.Println("────────────────────────────────────────────")
			for _, s := range standings {
				fmt.Printf("%-5d %-3d %-3d %-3d %-3d %-4d %-4d %-4d %d\n",
					s.TeamID, s.Played, s.Wins, s.Draws, s.Losses, s.For, s.Against, s.GoalDifference(), s.Points)
			}
			fmt.Println()
			return nil
		},
	}
}

func arenaPlayerStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player-stats",
		Short: "Show per-player appearances and goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := wire.ArenaService().PlayerStats(context.Background())
			if err != nil {
				return fmt.Errorf("failed to compute player stats: %w", err)
			}
			if len(lines) == 0 {
				fmt.Println("No appearances recorded")
				return nil
			}

			fmt.Printf("\n%-7s %-12s %s\n", "PLAYER", "APPEARANCES", "GOALS")
			fmt.Println("───────────────────────────")
			for _, l := range lines {
				fmt.Printf("%-7d %-12d %d\n", l.PlayerID, l.Appearances, l.Goals)
			}
			fmt.Println()
			return nil
		},
	}
}
