package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// Phase is the controller state.
type Phase int

const (
	PhaseDifficultySelect Phase = iota
	PhaseNameEntry
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDifficultySelect:
		return "difficulty_select"
	case PhaseNameEntry:
		return "name_entry"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrNoLeaderboard is reported by SaveStatus when the game has no store.
var ErrNoLeaderboard = errors.New("snake: no leaderboard configured")

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default game configuration.
func WithConfig(cfg config.SnakeConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock sets the wall clock used for fruit lifetimes and slow mode.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithLeaderboard sets the store used for saving and for the side panel.
func WithLeaderboard(store leaderboard.Store) Option {
	return func(g *Game) { g.board = store }
}

// WithDifficulty skips the difficulty menu.
func WithDifficulty(preset config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = preset }
}

// WithPlayerName skips name entry. Names that would not fit are truncated;
// names with characters the menu would reject are ignored.
func WithPlayerName(name string) Option {
	return func(g *Game) { g.presetName = name }
}

// Game is the snake controller: difficulty menu, name entry, play, pause and
// game over, advanced one tick per Step.
type Game struct {
	cfg        config.SnakeConfig
	board      leaderboard.Store
	now        func() time.Time
	preset     config.DifficultyPreset
	presetName string

	rng   *rand.Rand
	tick  uint64
	phase Phase

	difficulty int
	name       []rune

	snake *Snake
	walls *WallSet
	occ   *Occupancy
	food  Fruit
	bonus Fruit
	power Fruit
	grow  bool // grow on the next move

	// A second direction pressed within one tick, applied on the next.
	queued    Direction
	hasQueued bool

	score       int
	lives       int
	fruitsEaten int
	autopilot   bool

	slowActive bool
	slowStart  time.Duration

	// Play clock: wall time since roundStart minus time spent paused.
	roundStart  time.Time
	pausedAt    time.Time
	pausedTotal time.Duration

	saved   bool
	saveErr error
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg: config.DefaultSnakeConfig(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the game configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset starts over from the difficulty menu, or further along when a
// preset difficulty or player name was given.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = PhaseDifficultySelect
	g.difficulty = 0
	g.name = g.name[:0]
	g.occ = NewOccupancy(g.cfg.Grid.Width, g.cfg.Grid.Height)
	g.snake = nil
	g.walls = NewWallSet()
	g.food, g.bonus, g.power = Fruit{Kind: FruitNormal}, Fruit{Kind: FruitBonus}, Fruit{Kind: FruitPower}
	g.score, g.fruitsEaten = 0, 0
	g.autopilot = false
	g.slowActive = false
	g.saved, g.saveErr = false, nil

	if i, ok := g.cfg.DifficultyIndex(g.preset); ok {
		g.selectDifficulty(i)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var res core.StepResult

	switch g.phase {
	case PhaseDifficultySelect:
		for i, a := range difficultyActions {
			if input.Has(a) && i < len(g.cfg.Difficulties) {
				g.selectDifficulty(i)
				break
			}
		}
		// Characters typed right after the difficulty key start the name.
		if g.phase == PhaseNameEntry {
			g.editName(core.InputFrame{Chars: input.Chars})
		}

	case PhaseNameEntry:
		g.editName(input)

	case PhasePlaying:
		if input.Has(core.ActionPause) {
			g.phase = PhasePaused
			g.pausedAt = g.now()
			break
		}
		if input.Has(core.ActionAutopilot) {
			g.autopilot = !g.autopilot
		}
		g.update(input, &res)

	case PhasePaused:
		if input.Has(core.ActionPause) {
			g.pausedTotal += g.now().Sub(g.pausedAt)
			g.phase = PhasePlaying
		}

	case PhaseGameOver:
		switch {
		case input.Has(core.ActionRestart):
			g.startRound()
		case input.Has(core.ActionSave):
			g.saveScore()
		}
	}

	res.State = g.State()
	return res
}

var difficultyActions = [...]core.Action{core.ActionDifficulty1, core.ActionDifficulty2, core.ActionDifficulty3}

// selectDifficulty fixes the difficulty and moves on to name entry, or
// straight into play when a usable preset name exists.
func (g *Game) selectDifficulty(i int) {
	g.difficulty = i
	g.lives = g.cfg.Difficulty(i).Lives
	g.phase = PhaseNameEntry

	if name, ok := g.presetRunes(); ok {
		g.name = append(g.name[:0], name...)
		g.autopilot = false
		g.startRound()
	}
}

// presetRunes returns the preset player name when it is usable as is.
func (g *Game) presetRunes() ([]rune, bool) {
	if g.presetName == "" {
		return nil, false
	}
	name := []rune(leaderboard.Truncate(g.presetName, g.cfg.Leaderboard.NameLimit()))
	for _, r := range name {
		if !nameRune(r) {
			return nil, false
		}
	}
	return name, true
}

// TypingWith reports whether keys pressed now are name characters, given
// the input already collected for the next tick. A pending difficulty choice
// that leads to name entry counts as typing, so letters pressed before the
// tick are not taken as actions.
func (g *Game) TypingWith(pending core.InputFrame) bool {
	if g.phase == PhaseNameEntry {
		return true
	}
	if g.phase != PhaseDifficultySelect {
		return false
	}
	if _, ok := g.presetRunes(); ok {
		return false
	}
	for i, a := range difficultyActions {
		if pending.Has(a) && i < len(g.cfg.Difficulties) {
			return true
		}
	}
	return false
}

// nameRune reports whether r may appear in a player name.
// Whitespace is excluded so names stay one token in the leaderboard file.
func nameRune(r rune) bool {
	return r > ' ' && r <= '}'
}

func (g *Game) editName(input core.InputFrame) {
	limit := g.cfg.Leaderboard.NameLimit()
	for _, r := range input.Chars {
		if nameRune(r) && len(g.name) < limit {
			g.name = append(g.name, r)
		}
	}
	if input.Has(core.ActionBackspace) && len(g.name) > 0 {
		g.name = g.name[:len(g.name)-1]
	}
	if input.Has(core.ActionConfirm) && len(g.name) > 0 {
		g.autopilot = false
		g.startRound()
	}
}

// startRound sets up a fresh board: new snake at the centre, new walls and
// food, score cleared and lives restored to the difficulty default.
func (g *Game) startRound() {
	d := g.cfg.Difficulty(g.difficulty)

	g.snake = NewSnake(g.center())
	g.walls = PlaceWalls(g.rng, g.occ, g.snake, d.Walls)
	g.occ.Rebuild(g.snake, g.walls)

	g.food = Fruit{Kind: FruitNormal}
	g.bonus = Fruit{Kind: FruitBonus}
	g.power = Fruit{Kind: FruitPower}
	g.placeFood()

	g.grow, g.hasQueued = false, false
	g.score = 0
	g.lives = d.Lives
	g.fruitsEaten = 0
	g.slowActive = false
	g.saved, g.saveErr = false, nil

	g.roundStart = g.now()
	g.pausedTotal = 0
	g.phase = PhasePlaying
}

func (g *Game) center() Cell {
	return Cell{X: g.cfg.Grid.Width / 2, Y: g.cfg.Grid.Height / 2}
}

// PlayTime returns the time spent playing the current round, excluding pauses.
func (g *Game) PlayTime() time.Duration {
	if g.snake == nil {
		return 0
	}
	now := g.now()
	if g.phase == PhasePaused {
		now = g.pausedAt
	}
	return now.Sub(g.roundStart) - g.pausedTotal
}

// placeFood puts the normal fruit on a free cell away from the special fruits.
func (g *Game) placeFood() {
	c, ok := FreeCell(g.rng, g.occ, activeCells(g.bonus, g.power)...)
	g.food.Pos, g.food.Active = c, ok
}

// update runs one tick of play.
func (g *Game) update(input core.InputFrame, res *core.StepResult) {
	fruit := g.cfg.Fruit
	mult := g.cfg.Difficulty(g.difficulty).Multiplier
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	now := g.PlayTime()

	if g.slowActive && now-g.slowStart > fruit.SlowDuration {
		g.slowActive = false
	}

	if g.autopilot {
		if g.food.Active {
			if d, ok := NextStep(g.snake.Head(), g.food.Pos, w, h, g.walls); ok {
				g.snake.Turn(d)
			}
		}
	} else {
		g.steer(input)
	}

	g.snake.Move(g.grow)
	g.grow = false
	g.occ.Rebuild(g.snake, g.walls)

	head := g.snake.Head()
	if g.walls.Has(head) {
		g.loseLife(res)
		return
	}

	if !g.food.Active {
		g.placeFood()
	}

	if g.food.At(head) {
		res.Sounds = append(res.Sounds, core.SoundEat)
		g.grow = true
		g.score += fruit.NormalPoints * mult
		g.fruitsEaten++
		g.placeFood()

		if g.fruitsEaten%fruit.BonusEvery == 0 && !g.bonus.Active {
			res.Sounds = append(res.Sounds, core.SoundBonus)
			if c, ok := FreeCell(g.rng, g.occ, activeCells(g.food, g.power)...); ok {
				g.bonus = Fruit{Kind: FruitBonus, Pos: c, Active: true, SpawnedAt: now}
			}
		}
		if g.fruitsEaten%fruit.PowerEvery == 0 && !g.power.Active {
			if c, ok := FreeCell(g.rng, g.occ, activeCells(g.food, g.bonus)...); ok {
				g.power = Fruit{Kind: FruitPower, Pos: c, Active: true, SpawnedAt: now}
			}
		}
	}

	if g.bonus.Active {
		switch {
		case g.bonus.Expired(now, fruit.BonusLifetime):
			g.bonus.Active = false
		case g.bonus.At(head):
			res.Sounds = append(res.Sounds, core.SoundEat)
			g.score += fruit.BonusPoints * mult
			g.grow = true
			g.bonus.Active = false
		}
	}

	if g.power.Active {
		switch {
		case g.power.Expired(now, fruit.PowerLifetime):
			g.power.Active = false
		case g.power.At(head):
			res.Sounds = append(res.Sounds, core.SoundEat)
			// A second power fruit restarts the slow timer.
			g.slowActive = true
			g.slowStart = now
			g.score += fruit.PowerPoints * mult
			g.grow = true
			g.power.Active = false
		}
	}

	if g.snake.CheckCollision(w, h) {
		g.loseLife(res)
	}
}

// steer turns toward the directions pressed this tick, oldest first. The
// first one the snake accepts is applied now and the last one pressed after
// it is queued for the next tick.
func (g *Game) steer(input core.InputFrame) {
	var dirs []Direction
	if g.hasQueued {
		dirs = append(dirs, g.queued)
		g.hasQueued = false
	}
	for _, a := range input.Sequence() {
		if d, ok := actionDirection(a); ok {
			dirs = append(dirs, d)
		}
	}

	for i, d := range dirs {
		if !g.snake.Turn(d) {
			continue
		}
		if last := dirs[len(dirs)-1]; i < len(dirs)-1 && last != d {
			g.queued, g.hasQueued = last, true
		}
		return
	}
}

func actionDirection(a core.Action) (Direction, bool) {
	for _, d := range directions {
		if directionActions[d] == a {
			return d, true
		}
	}
	return 0, false
}

var directionActions = [4]core.Action{
	DirUp:    core.ActionUp,
	DirRight: core.ActionRight,
	DirDown:  core.ActionDown,
	DirLeft:  core.ActionLeft,
}

// loseLife respawns the snake at the centre while lives remain; walls, fruit,
// score and the fruit counter are kept. On the last life the game ends.
func (g *Game) loseLife(res *core.StepResult) {
	if g.lives > 1 {
		g.lives--
		g.snake = NewSnake(g.center())
		g.grow, g.hasQueued = false, false
		g.occ.Rebuild(g.snake, g.walls)
		return
	}
	g.lives = 0
	g.slowActive = false
	res.Sounds = append(res.Sounds, core.SoundHit)
	g.phase = PhaseGameOver
}

// saveScore appends the current name and score once per game over.
func (g *Game) saveScore() {
	if g.saved {
		return
	}
	if g.board == nil {
		g.saveErr = ErrNoLeaderboard
		return
	}
	if err := g.board.Save(string(g.name), g.score); err != nil {
		g.saveErr = err
		return
	}
	g.saved, g.saveErr = true, nil
}

// SaveStatus reports whether the score of the finished round was saved and
// the error of the last failed attempt.
func (g *Game) SaveStatus() (saved bool, err error) {
	return g.saved, g.saveErr
}

// TickRate returns the current ticks per second: the menu rate until a round
// starts, the difficulty rate while playing, halved (minimum 1) in slow mode.
func (g *Game) TickRate() int {
	if g.phase == PhaseDifficultySelect || g.phase == PhaseNameEntry {
		return g.cfg.MenuTickRate
	}
	rate := g.cfg.Difficulty(g.difficulty).TickRate
	if g.slowActive {
		rate = max(1, rate/2)
	}
	return rate
}

// Phase returns the controller state.
func (g *Game) Phase() Phase {
	return g.phase
}

// PlayerName returns the name typed so far.
func (g *Game) PlayerName() string {
	return string(g.name)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Typing:   g.phase == PhaseNameEntry,
	}
}
