package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyPreset names a difficulty chosen outside the in-game menu
// (command-line flag or SSH session).
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = "" // Ask in the menu
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset normalizes a user-supplied difficulty name.
// Digits 1-3 are accepted as aliases, matching the menu keys.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyNone, nil
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "normal", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// DifficultyIndex returns the index of the difficulty matching preset.
// Difficulties are matched by name first, then by menu position for the
// built-in presets. ok is false for DifficultyNone or an unknown name.
func (c SnakeConfig) DifficultyIndex(preset DifficultyPreset) (index int, ok bool) {
	if preset == DifficultyNone {
		return 0, false
	}
	for i, d := range c.Difficulties {
		if strings.EqualFold(d.Name, string(preset)) {
			return i, true
		}
	}
	var pos int
	switch preset {
	case DifficultyEasy:
		pos = 0
	case DifficultyMedium:
		pos = 1
	case DifficultyHard:
		pos = 2
	default:
		return 0, false
	}
	if pos >= len(c.Difficulties) {
		return 0, false
	}
	return pos, true
}

// DifficultyLabels returns "[1] Easy" style menu labels for all difficulties.
func (c SnakeConfig) DifficultyLabels() []string {
	labels := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		labels[i] = "[" + strconv.Itoa(i+1) + "] " + d.Title()
	}
	return labels
}

// Title returns the difficulty name with its first letter upper-cased.
func (d DifficultyLevel) Title() string {
	if d.Name == "" {
		return d.Name
	}
	return strings.ToUpper(d.Name[:1]) + d.Name[1:]
}
