package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit       int
	flagScoresTUI   bool
	flagPlayer      string
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best scores from the leaderboard file, or from the
SQLite database when --db is given.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --tui
  snake scores --player alice
  snake scores --clear
  snake scores --db ~/.snake/scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", leaderboard.DefaultTop, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show every score of one player")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all saved scores")
}

// clearer is implemented by both leaderboard backends.
type clearer interface {
	Clear() error
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger()
	defer closeLog()

	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	switch {
	case flagClearScores:
		clearScores(store)
		return
	case flagPlayer != "":
		printPlayerScores(store, flagPlayer)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			closeStore()
			fatalf("running scoreboard: %v", err)
		}
		return
	}

	entries, err := store.Top(flagLimit)
	if err != nil {
		closeStore()
		fatalf("reading leaderboard: %v", err)
	}

	if fs, ok := store.(*leaderboard.FileStore); ok {
		fmt.Printf("Snake Leaderboard (%s)\n", fs.Path())
	} else {
		fmt.Println("Snake Leaderboard")
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores yet!")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Player", "Score")
	fmt.Printf("  %-4s  %-20s  %s\n", "----", "------", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-20s  %d\n", i+1, leaderboard.Truncate(e.Name, 20), e.Score)
	}

	if db, ok := store.(*storage.Store); ok {
		stats, err := db.Stats()
		if err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Players: %d  Best: %d  Average: %.1f\n",
				stats.Games, stats.Players, stats.HighScore, stats.AvgScore)
			if !stats.LastPlayed.IsZero() {
				fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
			}
		}
	}
}

func clearScores(store leaderboard.Store) {
	c, ok := store.(clearer)
	if !ok {
		fatalf("this leaderboard cannot be cleared")
	}
	if err := c.Clear(); err != nil {
		fatalf("clearing leaderboard: %v", err)
	}
	fmt.Println("Leaderboard cleared.")
}

// printPlayerScores lists every score saved under name, best first.
func printPlayerScores(store leaderboard.Store, name string) {
	fmt.Printf("Scores for %s\n\n", name)

	switch s := store.(type) {
	case *storage.Store:
		records, err := s.PlayerScores(name)
		if err != nil {
			fatalf("reading scores: %v", err)
		}
		if len(records) == 0 {
			fmt.Println("No scores yet!")
			return
		}
		fmt.Printf("  %-6s  %s\n", "Score", "Played")
		for _, r := range records {
			fmt.Printf("  %-6d  %s\n", r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
		}

	case *leaderboard.FileStore:
		all, err := s.All()
		if err != nil {
			fatalf("reading leaderboard: %v", err)
		}
		var mine []leaderboard.Entry
		for _, e := range all {
			if e.Name == name {
				mine = append(mine, e)
			}
		}
		if len(mine) == 0 {
			fmt.Println("No scores yet!")
			return
		}
		for _, e := range leaderboard.Rank(mine, len(mine)) {
			fmt.Printf("  %d\n", e.Score)
		}
	}
}
