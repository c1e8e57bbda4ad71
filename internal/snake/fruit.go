package snake

import "time"

// FruitKind distinguishes the three pickups.
type FruitKind int

const (
	FruitNormal FruitKind = iota // always present, replaced when eaten
	FruitBonus                   // timed, worth extra points
	FruitPower                   // timed, triggers slow mode
)

func (k FruitKind) String() string {
	switch k {
	case FruitNormal:
		return "normal"
	case FruitBonus:
		return "bonus"
	case FruitPower:
		return "power"
	default:
		return "unknown"
	}
}

// Fruit is a pickup on the board. SpawnedAt is measured in play time.
type Fruit struct {
	Kind      FruitKind
	Pos       Cell
	Active    bool
	SpawnedAt time.Duration
}

// Remaining returns how long the fruit has left at play time now,
// never less than zero.
func (f Fruit) Remaining(now, lifetime time.Duration) time.Duration {
	left := lifetime - (now - f.SpawnedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether more than lifetime has passed since the spawn.
func (f Fruit) Expired(now, lifetime time.Duration) bool {
	return now-f.SpawnedAt > lifetime
}

// At reports whether the fruit is active and sits on c.
func (f Fruit) At(c Cell) bool {
	return f.Active && f.Pos == c
}

// activeCells returns the positions of the active fruits among fs.
func activeCells(fs ...Fruit) []Cell {
	var out []Cell
	for _, f := range fs {
		if f.Active {
			out = append(out, f.Pos)
		}
	}
	return out
}
