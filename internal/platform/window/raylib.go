//go:build raylib

package window

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	fontSize     = 18
	panelColumns = 25 // leaderboard panel plus gap
)

var palette = map[core.Color]rl.Color{
	core.ColorDefault:      rl.NewColor(220, 220, 220, 255),
	core.ColorRed:          rl.NewColor(205, 49, 49, 255),
	core.ColorGreen:        rl.NewColor(13, 188, 121, 255),
	core.ColorYellow:       rl.NewColor(229, 229, 16, 255),
	core.ColorWhite:        rl.NewColor(229, 229, 229, 255),
	core.ColorBrightGreen:  rl.NewColor(35, 209, 139, 255),
	core.ColorBrightYellow: rl.NewColor(245, 245, 67, 255),
	core.ColorBrightCyan:   rl.NewColor(41, 184, 219, 255),
	core.ColorBrightWhite:  rl.NewColor(255, 255, 255, 255),
	core.ColorGray:         rl.NewColor(138, 138, 138, 255),
}

var specialKeys = []struct {
	key    int32
	action core.Action
}{
	{rl.KeyUp, core.ActionUp},
	{rl.KeyDown, core.ActionDown},
	{rl.KeyLeft, core.ActionLeft},
	{rl.KeyRight, core.ActionRight},
	{rl.KeyEnter, core.ActionConfirm},
	{rl.KeyBackspace, core.ActionBackspace},
	{rl.KeyEscape, core.ActionPause},
}

// Run opens a window and plays game until the window is closed or the
// player quits.
func Run(game *snake.Game, rt core.RuntimeConfig, opts Options) error {
	opts = opts.withDefaults()

	boardW, boardH := game.BoardSize()
	cols, rows := boardW+panelColumns, boardH+2

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cols*opts.CellW), int32(rows*opts.CellH), opts.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc pauses instead of closing
	rl.SetTargetFPS(60)

	rt.ScreenW, rt.ScreenH = cols, rows
	game.Reset(rt.Seeded())
	screen := core.NewScreen(cols, rows)
	frame := core.NewInputFrame()

	var accum time.Duration
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			screen.Resize(int(rl.GetScreenWidth())/opts.CellW, int(rl.GetScreenHeight())/opts.CellH)
		}

		for _, k := range specialKeys {
			if rl.IsKeyPressed(k.key) {
				frame.Set(k.action)
			}
		}
		if rl.IsKeyPressed(rl.KeyF11) {
			rl.ToggleFullscreen()
		}
		if collectChars(&frame, pressedChars(), game.TypingWith(frame)) {
			break
		}

		accum += time.Duration(rl.GetFrameTime() * float32(time.Second))
		interval := time.Second / time.Duration(max(game.TickRate(), 1))
		if accum >= interval {
			accum -= interval
			if accum > interval {
				accum = 0 // drop ticks after a stall
			}
			res := game.Step(frame)
			for _, s := range res.Sounds {
				opts.Sound.Play(s)
			}
			frame.Clear()
		}

		game.Render(screen)
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawScreen(screen, opts.CellW, opts.CellH)
		rl.EndDrawing()
	}

	opts.Logger.Info("window closed", "score", game.Snapshot().Score)
	return nil
}

func pressedChars() []rune {
	var chars []rune
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		chars = append(chars, rune(c))
	}
	return chars
}

// drawScreen paints the character grid. Block glyphs become rectangles,
// box drawing becomes lines, everything else is drawn as text.
func drawScreen(s *core.Screen, cw, ch int) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			color, ok := palette[cell.Color]
			if !ok {
				color = palette[core.ColorDefault]
			}
			px, py := int32(x*cw), int32(y*ch)
			w, h := int32(cw), int32(ch)

			switch cell.Rune {
			case ' ':
			case '█':
				rl.DrawRectangle(px, py, w, h, color)
			case '▒':
				rl.DrawRectangle(px, py, w, h, rl.Fade(color, 0.5))
			case '─':
				rl.DrawLine(px, py+h/2, px+w, py+h/2, color)
			case '│':
				rl.DrawLine(px+w/2, py, px+w/2, py+h, color)
			case '┌':
				rl.DrawLine(px+w/2, py+h/2, px+w, py+h/2, color)
				rl.DrawLine(px+w/2, py+h/2, px+w/2, py+h, color)
			case '┐':
				rl.DrawLine(px, py+h/2, px+w/2, py+h/2, color)
				rl.DrawLine(px+w/2, py+h/2, px+w/2, py+h, color)
			case '└':
				rl.DrawLine(px+w/2, py, px+w/2, py+h/2, color)
				rl.DrawLine(px+w/2, py+h/2, px+w, py+h/2, color)
			case '┘':
				rl.DrawLine(px+w/2, py, px+w/2, py+h/2, color)
				rl.DrawLine(px, py+h/2, px+w/2, py+h/2, color)
			default:
				rl.DrawText(string(cell.Rune), px, py+(h-fontSize)/2, fontSize, color)
			}
		}
	}
}
