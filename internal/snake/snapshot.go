package snake

// Snapshot captures the controller state for determinism tests and debugging.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Difficulty  int
	Name        string
	Score       int
	Lives       int
	FruitsEaten int
	Head        Cell
	Len         int
	Dir         Direction
	Walls       int
	Food        Fruit
	Bonus       Fruit
	Power       Fruit
	SlowActive  bool
	TickRate    int
	Autopilot   bool
	Saved       bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Difficulty:  g.difficulty,
		Name:        string(g.name),
		Score:       g.score,
		Lives:       g.lives,
		FruitsEaten: g.fruitsEaten,
		Walls:       g.walls.Len(),
		Food:        g.food,
		Bonus:       g.bonus,
		Power:       g.power,
		SlowActive:  g.slowActive,
		TickRate:    g.TickRate(),
		Autopilot:   g.autopilot,
		Saved:       g.saved,
	}
	if g.snake != nil {
		s.Head = g.snake.Head()
		s.Len = g.snake.Len()
		s.Dir = g.snake.Direction()
	}
	return s
}
