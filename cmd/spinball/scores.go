package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinball/internal/registry"
	"github.com/vovakirdan/spinball/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagAllModes    bool
	flagPlayer      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|survival]",
	Short: "Show the ranking of a mode",
	Long: `Display the top scores for a mode (classic by default).

Entries are ranked by score, then by round reached, newest first.

Examples:
  spinball scores
  spinball scores survival --limit 20
  spinball scores --player kim
  spinball scores classic --clear
  spinball scores --clear --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored scores")
	scoresCmd.Flags().BoolVar(&flagAllModes, "all", false, "With --clear, delete the scores of every mode")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the best run of one player")
}

func runScores(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, ok := modeID(arg)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'spinball list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear && flagAllModes:
		if err := store.ClearAll(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All scores deleted.")
		return

	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Scores for %s deleted.\n", title)
		return

	case flagPlayer != "":
		printPlayerBest(store, gameID, title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Ranking - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spinball play %s' to set the first high score!\n", arg)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "Rank", "Name", "Score", "Round", "Balls", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "----", "----", "-----", "-----", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-5d  %s\n",
			i+1, e.PlayerName, e.Score, e.Round, e.Balls, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Players: %d  Best: %d  Average: %.1f  Best round: %d\n",
		stats.GamesCount, stats.UniquePlayers, stats.HighScore, stats.AvgScore, stats.HighestRound)
}

func printPlayerBest(store *storage.Store, gameID, title string) {
	best, err := store.PlayerBest(gameID, flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if best == nil {
		fmt.Printf("%s has no runs in %s.\n", flagPlayer, title)
		return
	}
	fmt.Printf("Best run of %s in %s\n", best.PlayerName, title)
	fmt.Printf("  Score: %d  Round: %d  Balls: %d  Date: %s\n",
		best.Score, best.Round, best.Balls, best.CreatedAt.Format("2006-01-02 15:04"))
}
