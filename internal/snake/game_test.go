package snake

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type memStore struct {
	entries []leaderboard.Entry
	err     error
}

func (m *memStore) Save(name string, score int) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, leaderboard.Entry{Name: name, Score: score})
	return nil
}

func (m *memStore) Top(n int) ([]leaderboard.Entry, error) {
	return leaderboard.Rank(m.entries, n), nil
}

// newPlaying returns a game already in play at the given difficulty with
// the snake at the grid centre facing right.
func newPlaying(t *testing.T, preset config.DifficultyPreset, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	all := append([]Option{WithClock(clk.Now), WithDifficulty(preset), WithPlayerName("tester")}, opts...)
	g := New(all...)
	g.Reset(core.RuntimeConfig{Seed: 42})
	if g.Phase() != PhasePlaying {
		t.Fatalf("presets should start play, phase = %v", g.Phase())
	}
	return g, clk
}

// clearBoard removes walls and parks the normal fruit in a corner so the
// snake can move right from the centre without touching anything.
func clearBoard(g *Game) {
	g.walls = NewWallSet()
	g.food.Pos = Cell{0, 0}
	g.food.Active = true
	g.occ.Rebuild(g.snake, g.walls)
}

func ahead(g *Game) Cell {
	return g.snake.Head().Step(g.snake.Direction())
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func typed(s string) core.InputFrame {
	in := core.NewInputFrame()
	for _, r := range s {
		in.Type(r)
	}
	return in
}

func TestMenuFlow(t *testing.T) {
	g := New(WithClock(newFakeClock().Now))
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Phase() != PhaseDifficultySelect {
		t.Fatalf("initial phase = %v, expected difficulty select", g.Phase())
	}
	if g.TickRate() != 10 {
		t.Errorf("menu TickRate() = %d, expected 10", g.TickRate())
	}

	// Non-menu keys do nothing
	g.Step(press(core.ActionUp, core.ActionPause))
	if g.Phase() != PhaseDifficultySelect {
		t.Fatalf("phase changed to %v without a difficulty key", g.Phase())
	}

	res := g.Step(press(core.ActionDifficulty2))
	if g.Phase() != PhaseNameEntry {
		t.Fatalf("phase = %v, expected name entry", g.Phase())
	}
	if !res.State.Typing {
		t.Error("State().Typing should be set during name entry")
	}
	if snap := g.Snapshot(); snap.Difficulty != 1 || snap.Lives != 5 {
		t.Errorf("difficulty %d lives %d, expected medium with 5 lives", snap.Difficulty, snap.Lives)
	}

	g.Step(typed("ab c"))
	if g.PlayerName() != "abc" {
		t.Errorf("PlayerName() = %q, expected spaces to be dropped", g.PlayerName())
	}
	g.Step(press(core.ActionBackspace))
	if g.PlayerName() != "ab" {
		t.Errorf("PlayerName() = %q after backspace, expected \"ab\"", g.PlayerName())
	}

	g.Step(press(core.ActionConfirm))
	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", snap.Phase)
	}
	if snap.TickRate != 12 {
		t.Errorf("TickRate = %d, expected 12", snap.TickRate)
	}
	if snap.Walls != 8 {
		t.Errorf("medium should place 8 walls, got %d", snap.Walls)
	}
	if snap.Len != 1 || snap.Head != (Cell{15, 10}) || snap.Dir != DirRight {
		t.Errorf("snake should start at the centre facing right, got %+v len %d %v", snap.Head, snap.Len, snap.Dir)
	}
	if !snap.Food.Active {
		t.Error("normal fruit should be placed at round start")
	}
}

func TestEasyHasNoWalls(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	if g.walls.Len() != 0 {
		t.Errorf("easy should have no walls, got %d", g.walls.Len())
	}
}

func TestNameEntryLimits(t *testing.T) {
	g := New(WithClock(newFakeClock().Now), WithDifficulty(config.DifficultyEasy))
	g.Reset(core.RuntimeConfig{Seed: 1})

	// Confirm with an empty name is ignored
	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseNameEntry {
		t.Fatalf("empty name should not start the game, phase = %v", g.Phase())
	}

	long := ""
	for i := 0; i < 40; i++ {
		long += "x"
	}
	g.Step(typed(long + "~\x7f"))
	if n := len(g.PlayerName()); n != 29 {
		t.Errorf("name length = %d, expected 29", n)
	}
}

func TestPresetNameTruncated(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	g, _ := newPlaying(t, config.DifficultyEasy, WithPlayerName(long))
	if g.PlayerName() != long[:29] {
		t.Errorf("PlayerName() = %q, expected first 29 characters", g.PlayerName())
	}
}

func TestPresetNameWithSpaceAsksForName(t *testing.T) {
	g := New(WithClock(newFakeClock().Now), WithDifficulty(config.DifficultyHard), WithPlayerName("two words"))
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.Phase() != PhaseNameEntry {
		t.Errorf("phase = %v, expected name entry for an unusable preset name", g.Phase())
	}
}

func TestDifficultyTickKeepsTypedCharacters(t *testing.T) {
	g := New(WithClock(newFakeClock().Now))
	g.Reset(core.RuntimeConfig{Seed: 1})

	in := press(core.ActionDifficulty1)
	if !g.TypingWith(in) {
		t.Fatal("a pending difficulty key should switch to typing")
	}
	in.Type('q')
	in.Type('a')
	g.Step(in)
	if g.Phase() != PhaseNameEntry || g.PlayerName() != "qa" {
		t.Errorf("phase %v name %q, expected name entry with \"qa\"", g.Phase(), g.PlayerName())
	}
}

func TestTypingWith(t *testing.T) {
	g := New(WithClock(newFakeClock().Now))
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.TypingWith(core.NewInputFrame()) {
		t.Error("menu without a pending choice should not be typing")
	}

	preset := New(WithClock(newFakeClock().Now), WithPlayerName("tester"))
	preset.Reset(core.RuntimeConfig{Seed: 1})
	if preset.TypingWith(press(core.ActionDifficulty2)) {
		t.Error("a usable preset name skips name entry, so keys stay actions")
	}

	playing, _ := newPlaying(t, config.DifficultyEasy)
	if playing.TypingWith(core.NewInputFrame()) {
		t.Error("play should not be typing")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs stay identical.
	g1, _ := newPlaying(t, config.DifficultyMedium)
	g2, _ := newPlaying(t, config.DifficultyMedium)

	g1.Step(press(core.ActionAutopilot))
	g2.Step(press(core.ActionAutopilot))
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%37 == 0 {
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)

		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if s1 != s2 {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, s1, s2)
		}
		if s1.Phase == PhaseGameOver {
			g1.Step(press(core.ActionRestart))
			g2.Step(press(core.ActionRestart))
		}
	}
}

func TestHumanSteering(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)

	g.Step(press(core.ActionUp))
	if g.snake.Head() != (Cell{15, 9}) {
		t.Errorf("head = %+v, expected (15, 9)", g.snake.Head())
	}

	// Grow so reversal is filtered
	g.grow = true
	g.Step(core.NewInputFrame())
	g.Step(press(core.ActionDown))
	if g.snake.Direction() != DirUp {
		t.Errorf("reversal should be ignored, direction = %v", g.snake.Direction())
	}
}

func TestSteeringFollowsPressOrder(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.grow = true
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	// Heading right with length 2, head at (17, 10).

	g.Step(press(core.ActionDown, core.ActionLeft))
	if g.snake.Head() != (Cell{17, 11}) {
		t.Fatalf("head = %+v, expected the earlier Down first", g.snake.Head())
	}
	g.Step(core.NewInputFrame())
	if g.snake.Direction() != DirLeft || g.snake.Head() != (Cell{16, 11}) {
		t.Errorf("head %+v dir %v, expected the queued Left on the next tick", g.snake.Head(), g.snake.Direction())
	}

	g.Step(press(core.ActionUp, core.ActionRight))
	if g.snake.Head() != (Cell{16, 10}) {
		t.Fatalf("head = %+v, expected Up", g.snake.Head())
	}
	g.Step(core.NewInputFrame())
	if g.snake.Direction() != DirRight {
		t.Errorf("direction = %v, expected the queued Right", g.snake.Direction())
	}
}

func TestEatNormalFruit(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyMedium)
	clearBoard(g)
	g.food.Pos = ahead(g)

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 20 {
		t.Errorf("score = %d, expected 10 x 2", res.State.Score)
	}
	if !slices.Contains(res.Sounds, core.SoundEat) {
		t.Errorf("sounds = %v, expected eat", res.Sounds)
	}
	snap := g.Snapshot()
	if snap.FruitsEaten != 1 {
		t.Errorf("FruitsEaten = %d, expected 1", snap.FruitsEaten)
	}
	if !snap.Food.Active || snap.Food.Pos == snap.Head || g.snake.Contains(snap.Food.Pos) {
		t.Errorf("replacement fruit %+v should be on a free cell", snap.Food)
	}

	// Growth happens on the following move
	if g.snake.Len() != 1 {
		t.Errorf("Len() = %d right after eating, expected 1", g.snake.Len())
	}
	g.food.Pos = Cell{0, 0}
	g.Step(core.NewInputFrame())
	if g.snake.Len() != 2 {
		t.Errorf("Len() = %d after the next move, expected 2", g.snake.Len())
	}
}

func TestBonusSpawnsOnEighthFruit(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.fruitsEaten = 7
	g.food.Pos = ahead(g)

	res := g.Step(core.NewInputFrame())
	if !g.bonus.Active {
		t.Fatal("eating the 8th fruit should spawn a bonus fruit")
	}
	if !slices.Contains(res.Sounds, core.SoundBonus) {
		t.Errorf("sounds = %v, expected bonus", res.Sounds)
	}
	if g.bonus.Pos == g.food.Pos || g.snake.Contains(g.bonus.Pos) {
		t.Errorf("bonus %+v overlaps the fruit or snake", g.bonus.Pos)
	}
	if g.power.Active {
		t.Error("power fruit should not spawn on the 8th fruit")
	}
}

func TestBonusNotRespawnedWhileActive(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.bonus = Fruit{Kind: FruitBonus, Pos: Cell{0, 19}, Active: true}
	g.fruitsEaten = 15
	g.food.Pos = ahead(g)

	res := g.Step(core.NewInputFrame())
	if g.bonus.Pos != (Cell{0, 19}) {
		t.Errorf("active bonus moved to %+v", g.bonus.Pos)
	}
	if slices.Contains(res.Sounds, core.SoundBonus) {
		t.Error("no bonus sound expected while a bonus is active")
	}
}

func TestBonusConsumedWithinWindow(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyMedium)
	clearBoard(g)
	g.fruitsEaten = 7
	g.food.Pos = ahead(g)
	g.Step(core.NewInputFrame())
	if !g.bonus.Active {
		t.Fatal("bonus should be active")
	}

	clk.Advance(4 * time.Second)
	g.food.Pos = Cell{0, 0}
	g.bonus.Pos = ahead(g)
	before := g.score

	res := g.Step(core.NewInputFrame())
	if got := res.State.Score - before; got != 40 {
		t.Errorf("bonus awarded %d, expected 20 x 2", got)
	}
	if g.bonus.Active {
		t.Error("bonus should be cleared after being eaten")
	}
}

func TestBonusExpires(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.fruitsEaten = 7
	g.food.Pos = ahead(g)
	g.Step(core.NewInputFrame())
	if !g.bonus.Active {
		t.Fatal("bonus should be active")
	}
	g.food.Pos = Cell{0, 0}
	g.bonus.Pos = Cell{29, 19}
	before := g.score

	clk.Advance(5 * time.Second)
	g.Step(core.NewInputFrame())
	if !g.bonus.Active {
		t.Fatal("bonus should survive exactly its lifetime")
	}

	clk.Advance(time.Millisecond)
	res := g.Step(core.NewInputFrame())
	if g.bonus.Active {
		t.Error("bonus should expire after 5s")
	}
	if res.State.Score != before {
		t.Errorf("expiry changed score from %d to %d", before, res.State.Score)
	}
}

func TestPowerSpawnsOnTwelfthFruit(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.fruitsEaten = 11
	g.food.Pos = ahead(g)

	res := g.Step(core.NewInputFrame())
	if !g.power.Active {
		t.Fatal("eating the 12th fruit should spawn a power fruit")
	}
	if g.power.Pos == g.food.Pos || g.snake.Contains(g.power.Pos) {
		t.Errorf("power %+v overlaps the fruit or snake", g.power.Pos)
	}
	if g.bonus.Active {
		t.Error("bonus fruit should not spawn on the 12th fruit")
	}
	if slices.Contains(res.Sounds, core.SoundBonus) {
		t.Errorf("sounds = %v, power spawn has no sound", res.Sounds)
	}
}

func TestPowerNotRespawnedWhileActive(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.power = Fruit{Kind: FruitPower, Pos: Cell{0, 19}, Active: true, SpawnedAt: g.PlayTime()}
	g.fruitsEaten = 23
	g.food.Pos = ahead(g)

	g.Step(core.NewInputFrame())
	if g.fruitsEaten != 24 {
		t.Fatalf("fruitsEaten = %d, expected 24", g.fruitsEaten)
	}
	if !g.power.Active || g.power.Pos != (Cell{0, 19}) {
		t.Errorf("active power fruit replaced: %+v", g.power)
	}
}

func TestPowerExpires(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.fruitsEaten = 11
	g.food.Pos = ahead(g)
	g.Step(core.NewInputFrame())
	if !g.power.Active {
		t.Fatal("power fruit should be active")
	}
	g.food.Pos = Cell{0, 0}
	g.power.Pos = Cell{29, 19}
	before := g.score

	clk.Advance(7 * time.Second)
	g.Step(core.NewInputFrame())
	if !g.power.Active {
		t.Fatal("power fruit should survive exactly its lifetime")
	}

	clk.Advance(time.Millisecond)
	res := g.Step(core.NewInputFrame())
	if g.power.Active {
		t.Error("power fruit should expire after 7s")
	}
	if res.State.Score != before {
		t.Errorf("expiry changed score from %d to %d", before, res.State.Score)
	}
	if g.TickRate() != 8 {
		t.Errorf("TickRate() = %d, expiry should not start slow mode", g.TickRate())
	}
}

func TestPowerFruitSlowMode(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.power = Fruit{Kind: FruitPower, Pos: ahead(g), Active: true}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 15 {
		t.Errorf("score = %d, expected 15", res.State.Score)
	}
	if g.TickRate() != 4 {
		t.Errorf("slowed TickRate() = %d, expected 4", g.TickRate())
	}
	if !g.grow {
		t.Error("power fruit should grow the snake")
	}

	clk.Advance(5*time.Second + time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.TickRate() != 8 {
		t.Errorf("TickRate() = %d after slow mode, expected 8", g.TickRate())
	}
}

func TestPowerFruitRefreshesSlowTimer(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyHard)
	clearBoard(g)
	g.power = Fruit{Kind: FruitPower, Pos: ahead(g), Active: true}
	g.Step(core.NewInputFrame())

	clk.Advance(3 * time.Second)
	g.power = Fruit{Kind: FruitPower, Pos: ahead(g), Active: true, SpawnedAt: g.PlayTime()}
	g.Step(core.NewInputFrame())

	// 6s after the first fruit, 3s after the second
	clk.Advance(3 * time.Second)
	g.Step(core.NewInputFrame())
	if g.TickRate() != 9 {
		t.Errorf("TickRate() = %d, expected slow mode to still be active at 9", g.TickRate())
	}
}

func TestSlowModeMinimumRate(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulties[0].TickRate = 1
	g, _ := newPlaying(t, config.DifficultyEasy, WithConfig(cfg))
	g.slowActive = true
	if g.TickRate() != 1 {
		t.Errorf("TickRate() = %d, expected floor of 1", g.TickRate())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g, clk := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.bonus = Fruit{Kind: FruitBonus, Pos: Cell{29, 19}, Active: true, SpawnedAt: g.PlayTime()}

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	head := g.snake.Head()

	clk.Advance(time.Minute)
	g.Step(press(core.ActionUp, core.ActionAutopilot))
	if g.snake.Head() != head {
		t.Error("snake moved while paused")
	}
	if g.autopilot {
		t.Error("autopilot toggled while paused")
	}

	g.Step(press(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing after unpause", g.Phase())
	}
	g.Step(core.NewInputFrame())
	if !g.bonus.Active {
		t.Error("bonus countdown should not run while paused")
	}
	if pt := g.PlayTime(); pt != 0 {
		t.Errorf("PlayTime() = %v, expected paused minute to be excluded", pt)
	}
}

func TestWallCollisionLosesLife(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.snake.Move(true)
	g.snake.Move(true)
	g.score = 70
	g.fruitsEaten = 3
	g.walls.Add(ahead(g))
	food := g.food

	res := g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", snap.Lives)
	}
	if snap.Phase != PhasePlaying || res.State.GameOver {
		t.Error("losing a life should not end the game")
	}
	if snap.Len != 1 || snap.Head != (Cell{15, 10}) {
		t.Errorf("snake should respawn at the centre with one segment, got %+v len %d", snap.Head, snap.Len)
	}
	if snap.Score != 70 || snap.FruitsEaten != 3 || snap.Walls != 1 || snap.Food != food {
		t.Errorf("score, fruit and walls should be kept: %+v", snap)
	}
	if slices.Contains(res.Sounds, core.SoundHit) {
		t.Error("non-fatal hit should be silent")
	}

	// Play continues on the next tick
	g.Step(core.NewInputFrame())
	if g.snake.Head() != (Cell{16, 10}) {
		t.Errorf("head = %+v, expected play to continue", g.snake.Head())
	}
}

func TestWallCollisionOnLastLife(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.lives = 1
	g.walls.Add(ahead(g))

	res := g.Step(core.NewInputFrame())
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Error("last life should end the game")
	}
	if !slices.Contains(res.Sounds, core.SoundHit) {
		t.Errorf("sounds = %v, expected hit", res.Sounds)
	}

	// Game over freezes the simulation
	head := g.snake.Head()
	g.Step(press(core.ActionUp))
	if g.snake.Head() != head {
		t.Error("snake moved after game over")
	}
}

func TestBoundaryCollision(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.snake = NewSnake(Cell{29, 10})

	g.Step(core.NewInputFrame())
	if g.lives != 2 || g.snake.Head() != (Cell{15, 10}) {
		t.Errorf("leaving the grid should cost a life, lives = %d head = %+v", g.lives, g.snake.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	for i := 0; i < 4; i++ {
		g.snake.Move(true)
	}
	g.lives = 1

	for _, a := range []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp} {
		g.Step(press(a))
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("turning into the body should end the game, phase = %v", g.Phase())
	}
}

func TestRestartResetsRound(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyMedium)
	clearBoard(g)
	g.lives = 1
	g.score = 300
	g.walls.Add(ahead(g))
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}

	g.Step(press(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", snap.Phase)
	}
	if snap.Lives != 5 || snap.Score != 0 || snap.FruitsEaten != 0 || snap.Len != 1 {
		t.Errorf("round not reset: %+v", snap)
	}
	if snap.Walls != 8 || snap.Name != "tester" {
		t.Errorf("walls %d name %q, expected new walls and the same player", snap.Walls, snap.Name)
	}
}

func TestSaveScore(t *testing.T) {
	store := &memStore{}
	g, _ := newPlaying(t, config.DifficultyEasy, WithLeaderboard(store))
	clearBoard(g)

	// Save is ignored during play
	g.Step(press(core.ActionSave))
	if len(store.entries) != 0 {
		t.Fatal("save should only work after game over")
	}

	g.lives = 1
	g.score = 120
	g.walls.Add(ahead(g))
	g.Step(core.NewInputFrame())

	g.Step(press(core.ActionSave))
	g.Step(press(core.ActionSave))
	if len(store.entries) != 1 {
		t.Fatalf("expected one saved entry, got %+v", store.entries)
	}
	if store.entries[0] != (leaderboard.Entry{Name: "tester", Score: 120}) {
		t.Errorf("saved %+v", store.entries[0])
	}
	if saved, err := g.SaveStatus(); !saved || err != nil {
		t.Errorf("SaveStatus() = %v, %v", saved, err)
	}
}

func TestSaveScoreFailureCanRetry(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	g, _ := newPlaying(t, config.DifficultyEasy, WithLeaderboard(store))
	clearBoard(g)
	g.lives = 1
	g.walls.Add(ahead(g))
	g.Step(core.NewInputFrame())

	g.Step(press(core.ActionSave))
	if saved, err := g.SaveStatus(); saved || err == nil {
		t.Fatalf("SaveStatus() = %v, %v; expected failure", saved, err)
	}

	store.err = nil
	g.Step(press(core.ActionSave))
	if saved, _ := g.SaveStatus(); !saved || len(store.entries) != 1 {
		t.Error("retry should save the score")
	}
}

func TestSaveWithoutLeaderboard(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.lives = 1
	g.walls.Add(ahead(g))
	g.Step(core.NewInputFrame())

	g.Step(press(core.ActionSave))
	if _, err := g.SaveStatus(); !errors.Is(err, ErrNoLeaderboard) {
		t.Errorf("SaveStatus() error = %v, expected ErrNoLeaderboard", err)
	}
}

func TestAutopilotReachesFood(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	g.food.Pos = Cell{3, 2}

	g.Step(press(core.ActionAutopilot))
	if !g.autopilot {
		t.Fatal("autopilot should be on")
	}
	for i := 0; i < 40 && g.fruitsEaten == 0; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.fruitsEaten != 1 {
		t.Errorf("autopilot did not reach the fruit, head at %+v", g.snake.Head())
	}
	if g.Snapshot().Lives != 3 {
		t.Error("autopilot should not crash on an empty board")
	}
}

func TestAutopilotKeepsDirectionWithoutPath(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyEasy)
	clearBoard(g)
	// Box the fruit in with walls
	g.food.Pos = Cell{0, 0}
	g.walls.Add(Cell{1, 0})
	g.walls.Add(Cell{0, 1})
	g.autopilot = true

	g.Step(core.NewInputFrame())
	if g.snake.Direction() != DirRight || g.snake.Head() != (Cell{16, 10}) {
		t.Errorf("without a path the snake should keep going right, head %+v dir %v", g.snake.Head(), g.snake.Direction())
	}
}

func TestTickRateByPhase(t *testing.T) {
	g, _ := newPlaying(t, config.DifficultyHard)
	if g.TickRate() != 18 {
		t.Errorf("hard TickRate() = %d, expected 18", g.TickRate())
	}
	g.Step(press(core.ActionPause))
	if g.TickRate() != 18 {
		t.Errorf("paused TickRate() = %d, expected 18", g.TickRate())
	}
}
