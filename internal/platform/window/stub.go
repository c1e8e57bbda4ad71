//go:build !raylib

package window

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Run returns ErrUnavailable; this binary has no raylib frontend.
func Run(_ *snake.Game, _ core.RuntimeConfig, _ Options) error {
	return ErrUnavailable
}
