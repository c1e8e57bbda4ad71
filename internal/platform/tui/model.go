package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	sound      audio.Player
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	phase      snake.Phase
	scoreSaved bool
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSound plays game sounds through p.
func WithSound(p audio.Player) ModelOption {
	return func(m *Model) { m.sound = p }
}

// WithLogger logs game events to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithRenderer renders the screen with r instead of the stdout renderer.
func WithRenderer(r *ScreenRenderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// NewModel creates a model for game and resets the game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.Seeded()

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sound:      audio.Nop{},
		logger:     log.New(io.Discard),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = NewScreenRenderer(nil)
	}

	// Reset here rather than in Init so key mapping sees the real phase
	// before the first tick.
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.phase = m.game.Phase()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.typing()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) typing() bool {
	return m.game.TypingWith(m.inputFrame)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.phase
	saveRequested := m.inputFrame.Has(core.ActionSave)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.phase = m.game.Phase()

	for _, s := range result.Sounds {
		m.sound.Play(s)
	}
	m.logTransition(prev, saveRequested)

	m.inputFrame.Clear()
	return m, tickCmd(m.game.TickRate())
}

// logTransition records round start, game over and save results.
func (m *Model) logTransition(prev snake.Phase, saveRequested bool) {
	snap := m.game.Snapshot()

	switch {
	case m.phase == snake.PhasePlaying && prev != snake.PhasePlaying && prev != snake.PhasePaused:
		m.scoreSaved = false
		d := m.game.Config().Difficulty(snap.Difficulty)
		m.logger.Info("round started", "player", snap.Name, "difficulty", d.Name, "lives", snap.Lives)

	case m.phase == snake.PhaseGameOver && prev != snake.PhaseGameOver:
		m.logger.Info("game over", "player", snap.Name, "score", snap.Score, "fruits", snap.FruitsEaten)

	case m.phase == snake.PhaseGameOver && saveRequested && !m.scoreSaved:
		saved, err := m.game.SaveStatus()
		switch {
		case err != nil:
			m.logger.Error("score save failed", "player", snap.Name, "error", err)
		case saved:
			m.scoreSaved = true
			m.logger.Info("score saved", "player", snap.Name, "score", snap.Score)
		}
	}
}

// saveScreenshot writes the current screen as plain text to
// ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program for game.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
