package core

import "testing"

func TestRuntimeConfigSeededKeepsExplicitSeed(t *testing.T) {
	c := RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}.Seeded()
	if c.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", c.Seed)
	}
	if c.ScreenW != 80 || c.ScreenH != 24 {
		t.Errorf("screen size changed to %dx%d", c.ScreenW, c.ScreenH)
	}
}

func TestRuntimeConfigSeededReplacesZero(t *testing.T) {
	c := RuntimeConfig{}.Seeded()
	if c.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
