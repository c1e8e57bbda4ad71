package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// Layout constants. Each grid cell is drawn two columns wide so cells look
// roughly square in a terminal.
const (
	cellCols    = 2
	hudRows     = 1
	statusRows  = 1
	panelWidth  = 24
	panelGap    = 1
	cellGlyph   = '█'
	wallGlyph   = '▒'
	overlayPadX = 3
)

// BoardSize returns the screen size needed to draw the board with its HUD
// and status rows, without the leaderboard panel.
func (g *Game) BoardSize() (w, h int) {
	return g.cfg.Grid.Width*cellCols + 2, g.cfg.Grid.Height + 2 + hudRows + statusRows
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseDifficultySelect:
		g.renderDifficultyMenu(dst)
		return
	case PhaseNameEntry:
		g.renderNameEntry(dst)
		return
	}

	boardW, boardH := g.BoardSize()
	if !core.NewRect(0, 0, boardW, boardH).Fits(dst.Width(), dst.Height()) {
		renderOverlay(dst, core.ColorRed, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", boardW, boardH, dst.Width(), dst.Height()))
		return
	}

	showPanel := dst.Width() >= boardW+panelGap+panelWidth
	totalW := boardW
	if showPanel {
		totalW += panelGap + panelWidth
	}
	area := core.Centered(dst.Width(), dst.Height(), totalW, boardH)

	g.renderHUD(dst, area.X, area.Y, boardW)
	board := core.NewRect(area.X, area.Y+hudRows, boardW, g.cfg.Grid.Height+2)
	g.renderBoard(dst, board)
	g.renderStatus(dst, area.X, board.Bottom(), boardW)

	if showPanel {
		g.renderLeaderboard(dst, core.NewRect(board.Right()+panelGap, board.Y, panelWidth, board.H))
	}

	switch g.phase {
	case PhasePaused:
		renderOverlay(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderDifficultyMenu(dst *core.Screen) {
	lines := len(g.cfg.Difficulties) + 4
	y := (dst.Height() - lines) / 2

	dst.DrawTextCenteredColored(y, "S N A K E", core.ColorBrightGreen)
	dst.DrawTextCenteredColored(y+2, "Select Difficulty:", core.ColorBrightWhite)
	labels := g.cfg.DifficultyLabels()
	for i, d := range g.cfg.Difficulties {
		obstacles := "no obstacles"
		if d.Walls > 0 {
			obstacles = fmt.Sprintf("%d obstacles", d.Walls)
		}
		label := fmt.Sprintf("%-11s (%2d FPS, %dx, %s, %d lives)",
			labels[i], d.TickRate, d.Multiplier, obstacles, d.Lives)
		dst.DrawTextCenteredColored(y+3+i, label, core.ColorWhite)
	}
	keys := make([]string, len(g.cfg.Difficulties))
	for i := range keys {
		keys[i] = fmt.Sprint(i + 1)
	}
	dst.DrawTextCenteredColored(y+lines, "Press "+strings.Join(keys, "/")+" to choose", core.ColorGray)
}

func (g *Game) renderNameEntry(dst *core.Screen) {
	d := g.cfg.Difficulty(g.difficulty)
	y := (dst.Height() - 7) / 2

	info := fmt.Sprintf("Difficulty: %s  (FPS %d, %dx, Lives: %d)", d.Title(), d.TickRate, d.Multiplier, d.Lives)
	dst.DrawTextCenteredColored(y, info, core.ColorWhite)
	dst.DrawTextCenteredColored(y+2, "Enter your name:", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(y+4, string(g.name)+"_", core.ColorBrightGreen)
	dst.DrawTextCenteredColored(y+6, "Press ENTER to start", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, x, y, width int) {
	mode := "Human"
	if g.autopilot {
		mode = "AI"
	}
	hud := fmt.Sprintf("Player: %s   Score: %d   Lives: %d   Mode: %s", string(g.name), g.score, g.lives, mode)
	dst.DrawTextColored(x, y, hud, core.ColorBrightWhite)
	if g.slowActive {
		dst.DrawTextColored(x+width-len("SLOWED!"), y, "SLOWED!", core.ColorBrightCyan)
	}
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	cell := func(c Cell, glyph rune, color core.Color) {
		x := inner.X + c.X*cellCols
		y := inner.Y + c.Y
		for i := 0; i < cellCols; i++ {
			dst.SetColored(x+i, y, glyph, color)
		}
	}

	for _, w := range g.walls.Cells() {
		cell(w, wallGlyph, core.ColorGray)
	}

	if g.phase != PhaseGameOver {
		if g.food.Active {
			cell(g.food.Pos, cellGlyph, core.ColorRed)
		}
		if g.bonus.Active {
			cell(g.bonus.Pos, cellGlyph, core.ColorBrightYellow)
		}
		if g.power.Active {
			cell(g.power.Pos, cellGlyph, core.ColorBrightCyan)
		}
	}

	if g.snake != nil {
		for i := g.snake.Len() - 1; i >= 0; i-- {
			seg := g.snake.Segment(i)
			if !seg.In(g.cfg.Grid.Width, g.cfg.Grid.Height) {
				continue
			}
			color := core.ColorGreen
			if i == 0 {
				color = core.ColorBrightGreen
			}
			cell(seg, cellGlyph, color)
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen, x, y, width int) {
	if g.phase == PhaseGameOver {
		return
	}
	now := g.PlayTime()
	col := x
	if g.bonus.Active {
		text := fmt.Sprintf("BONUS: %.1fs", g.bonus.Remaining(now, g.cfg.Fruit.BonusLifetime).Seconds())
		dst.DrawTextColored(col, y, text, core.ColorBrightYellow)
		col += core.TextWidth(text) + 3
	}
	if g.power.Active {
		text := fmt.Sprintf("POWER: %.1fs", g.power.Remaining(now, g.cfg.Fruit.PowerLifetime).Seconds())
		dst.DrawTextColored(col, y, text, core.ColorBrightCyan)
	}
	help := "P pause  A autopilot"
	dst.DrawTextColored(x+width-core.TextWidth(help), y, help, core.ColorGray)
}

func (g *Game) renderLeaderboard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)
	dst.DrawTextColored(inner.X+(inner.W-len("LEADERBOARD"))/2, inner.Y, "LEADERBOARD", core.ColorYellow)

	entries := g.leaderboardEntries()
	if len(entries) == 0 {
		dst.DrawTextColored(inner.X+1, inner.Y+2, "No scores yet!", core.ColorGray)
		return
	}

	player := string(g.name)
	for i, e := range entries {
		y := inner.Y + 2 + i
		if y >= inner.Bottom() {
			break
		}
		color := core.ColorWhite
		if e.Name == player {
			color = core.ColorBrightYellow
		}
		line := fmt.Sprintf("%2d. %-10s %5d", i+1, leaderboard.Truncate(e.Name, 10), e.Score)
		dst.DrawTextColored(inner.X+1, y, line, color)
	}
}

// leaderboardEntries reads the current top entries. Any read error shows
// as an empty leaderboard.
func (g *Game) leaderboardEntries() []leaderboard.Entry {
	if g.board == nil {
		return nil
	}
	entries, err := g.board.Top(g.cfg.Leaderboard.Top)
	if err != nil {
		return nil
	}
	return entries
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Player: %s  |  Score: %d", string(g.name), g.score),
		"",
		"Press [R] to restart",
	}
	switch {
	case g.saved:
		lines = append(lines, "Score saved!")
	case g.saveErr != nil:
		lines = append(lines, "Save failed, press [L] to retry")
	default:
		lines = append(lines, "Press [L] to save score")
	}
	renderOverlay(dst, core.ColorRed, "GAME OVER", lines...)
}

// renderOverlay draws a centred box with a coloured title and body lines.
func renderOverlay(dst *core.Screen, titleColor core.Color, heading string, body ...string) {
	width := core.TextWidth(heading)
	for _, l := range body {
		width = max(width, core.TextWidth(l))
	}
	box := core.Centered(dst.Width(), dst.Height(), width+2*overlayPadX, len(body)+4)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColored(box.Y+1, heading, titleColor)
	for i, l := range body {
		dst.DrawTextCenteredColored(box.Y+3+i, l, core.ColorWhite)
	}
}
