// Package window runs the snake game in a native window with raylib.
// The raylib frontend is only built with -tags raylib; without it Run
// returns ErrUnavailable.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnavailable is returned by Run when the binary was built without raylib.
var ErrUnavailable = errors.New("window: built without raylib support (rebuild with -tags raylib)")

// Options configures the window frontend.
type Options struct {
	Title  string
	CellW  int // pixels per screen column
	CellH  int // pixels per screen row
	Sound  audio.Player
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Snake"
	}
	if o.CellW <= 0 {
		o.CellW = 10
	}
	if o.CellH <= 0 {
		o.CellH = 20
	}
	if o.Sound == nil {
		o.Sound = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// charAction maps a typed character to an action outside name entry.
// While typing every character belongs to the name.
func charAction(r rune, typing bool) core.Action {
	if typing {
		return core.ActionNone
	}
	switch r {
	case 'p', 'P':
		return core.ActionPause
	case 'a', 'A':
		return core.ActionAutopilot
	case 'r', 'R':
		return core.ActionRestart
	case 'l', 'L':
		return core.ActionSave
	case 'q', 'Q':
		return core.ActionQuit
	case '1':
		return core.ActionDifficulty1
	case '2':
		return core.ActionDifficulty2
	case '3':
		return core.ActionDifficulty3
	}
	return core.ActionNone
}

// collectChars feeds typed characters into frame. Returns true on a quit request.
func collectChars(frame *core.InputFrame, chars []rune, typing bool) bool {
	for _, r := range chars {
		if typing {
			frame.Type(r)
			continue
		}
		switch a := charAction(r, typing); a {
		case core.ActionQuit:
			return true
		case core.ActionNone:
		default:
			frame.Set(a)
		}
	}
	return false
}
