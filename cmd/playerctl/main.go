// playerctl is an operator CLI for the player database: it resolves name
// queries with the same cascade the server uses and reports roster stats.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"football-player-service/internal/config"
	"football-player-service/internal/match"
	"football-player-service/internal/store"
)

const commandTimeout = 30 * time.Second

var pg *store.PostgresStore

func main() {
	cfg := config.Load()

	var err error
	pg, err = store.OpenPostgres(cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	rootCmd := &cobra.Command{
		Use:   "playerctl",
		Short: "Football player lookup utility",
		Long:  `Resolve player name queries against the roster database and inspect roster contents`,
	}

	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := pg.Ping(ctx); err != nil {
				log.Fatalf("Database ping failed: %v", err)
			}
			fmt.Println("Database connection successful!")

			stats, err := pg.Stats(ctx)
			if err != nil {
				log.Printf("Error counting players: %v", err)
				return
			}
			fmt.Printf("Players loaded: %d\n", stats.TotalPlayers)
		},
	}
}

func createLookupCmd() *cobra.Command {
	var nationality string
	var position string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup [name]",
		Short: "Resolve a player name query",
		Long:  `Run the exact/prefix/fuzzy cascade for a name, optionally narrowed by nationality and position`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			matcher := match.New(pg, nil)
			var result match.Result
			if nationality != "" || position != "" {
				result = matcher.MatchWithHints(ctx, args[0], nationality, position)
			} else {
				result = matcher.Match(ctx, args[0])
			}

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					log.Fatalf("Failed to encode result: %v", err)
				}
				fmt.Println(string(out))
				return
			}
			printResult(result)
		},
	}

	cmd.Flags().StringVar(&nationality, "nationality", "", "Narrow ambiguous results by nationality")
	cmd.Flags().StringVar(&position, "position", "", "Narrow ambiguous results by position")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")

	return cmd
}

func printResult(result match.Result) {
	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("%s\n", result.Message)
	if result.Player != nil {
		fmt.Printf("\n%s", formatPlayerLine(result.Player.Name, result.Player.Nationality, result.Player.Position))
	}
	if len(result.Candidates) > 0 {
		fmt.Printf("\nCandidates:\n")
		for _, c := range result.Candidates {
			fmt.Printf("  %s", formatPlayerLine(c.Player.Name, c.Player.Nationality, c.Player.Position))
		}
	}
}

func formatPlayerLine(name, nationality, position string) string {
	line := name
	if nationality != "" {
		line += " (" + nationality + ")"
	}
	if position != "" {
		line += " - " + position
	}
	return line + "\n"
}

func createStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show roster statistics",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			stats, err := pg.Stats(ctx)
			if err != nil {
				log.Fatalf("Failed to load stats: %v", err)
			}

			fmt.Printf("Total Players: %d\n", stats.TotalPlayers)

			fmt.Println("\nTop Nationalities:")
			for _, nc := range stats.TopNationalities {
				fmt.Printf("  %-20s %d\n", nc.Name, nc.Count)
			}

			fmt.Println("\nTop Positions:")
			for _, nc := range stats.TopPositions {
				fmt.Printf("  %-20s %d\n", nc.Name, nc.Count)
			}
		},
	}
}
