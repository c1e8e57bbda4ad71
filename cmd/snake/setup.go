package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads snake.yaml and applies the global overrides.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	return cfg
}

// openStore returns the leaderboard selected by the flags: SQLite when
// --db is given, otherwise the text file. The returned func releases it.
func openStore(cfg config.SnakeConfig, logger *log.Logger) (leaderboard.Store, func()) {
	if flagDBPath != "" {
		db, err := storage.Open(flagDBPath)
		if err == nil {
			return db, func() { db.Close() }
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("falling back to leaderboard file", "db", flagDBPath, "error", err)
	}
	return leaderboard.NewFileStore(cfg.Leaderboard.Path, cfg.Leaderboard.NameLimit()), func() {}
}

// newLogger logs to --log-file, or nowhere. Interactive frontends own the
// terminal so they never log to it.
func newLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fatalf("cannot open log file: %v", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	return logger, func() { f.Close() }
}

// openAudio returns the sound player, or a silent one when muted or when
// no audio device is available.
func openAudio(mute bool, logger *log.Logger) audio.Player {
	if mute {
		return audio.Nop{}
	}
	p, err := audio.Open()
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return p
}
