package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagDifficulty string
	flagName       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows     - Steer
  1/2/3      - Choose difficulty
  Enter      - Confirm name
  P/Esc      - Pause
  A          - Toggle autopilot
  R          - Restart (after game over)
  L          - Save score (after game over)
  Ctrl+S     - Screenshot to ~/.snake/screenshots
  Q/Ctrl+C   - Quit (Q is a name character during name entry)

Difficulty options:
  easy   - 8 ticks/s, 1x score, 3 lives, no obstacles
  medium - 12 ticks/s, 2x score, 5 lives, 8 obstacles
  hard   - 18 ticks/s, 3x score, 8 lives, 8 obstacles

Examples:
  snake play
  snake play --difficulty hard
  snake play --name alice --difficulty easy
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game flags shared by play, window and the root command.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard (skips the menu)")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name (skips name entry)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// newGame builds a game from the config and the shared game flags.
func newGame(cfg config.SnakeConfig, opts ...snake.Option) *snake.Game {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fatalf("%v", err)
	}
	opts = append([]snake.Option{
		snake.WithConfig(cfg),
		snake.WithDifficulty(preset),
		snake.WithPlayerName(flagName),
	}, opts...)
	return snake.New(opts...)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger()
	defer closeLog()

	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	sound := openAudio(flagMute, logger)
	defer sound.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	game := newGame(cfg, snake.WithLeaderboard(store))
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}

	if err := tui.Run(game, rt, tui.WithSound(sound), tui.WithLogger(logger)); err != nil {
		closeStore()
		fatalf("running game: %v", err)
	}
}
