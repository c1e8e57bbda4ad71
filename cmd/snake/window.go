package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Start a game in a native window rendered with raylib.

Uses the same controls as 'snake play', plus F11 for fullscreen.
The window frontend is only available in binaries built with:

  go build -tags raylib ./cmd/snake`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addPlayFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger()
	defer closeLog()

	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	sound := openAudio(flagMute, logger)
	defer sound.Close()

	game := newGame(cfg, snake.WithLeaderboard(store))
	err := window.Run(game, core.RuntimeConfig{Seed: flagSeed}, window.Options{
		Sound:  sound,
		Logger: logger,
	})
	switch {
	case errors.Is(err, window.ErrUnavailable):
		fatalf("%v\nUse 'snake play' for the terminal version.", err)
	case err != nil:
		fatalf("running game: %v", err)
	}
}
