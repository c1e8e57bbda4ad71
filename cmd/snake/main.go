// snake is the classic snake game for the terminal, a native window, or
// remote play over SSH.
//
// Usage:
//
//	snake                    - Play in the terminal (same as 'snake play')
//	snake play               - Play in the terminal
//	snake window             - Play in a native window (built with -tags raylib)
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the leaderboard
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom snake.yaml
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--leaderboard <path>  - Leaderboard text file (overrides the config)
//	--db <path>           - Keep the leaderboard in SQLite instead
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagSeed        int64
	flagLeaderboard string
	flagDBPath      string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake with three difficulties, obstacles, bonus and power fruits,
lives, a BFS autopilot and a shared leaderboard.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard --name alice
  snake serve --ssh :2222
  snake scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Store the leaderboard in this SQLite database instead of the text file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
