// Package leaderboard ranks player scores and persists them in an
// append-only text file of "<name> <score>" lines.
package leaderboard

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"unicode"
)

// DefaultTop is the number of entries shown in the leaderboard panel.
const DefaultTop = 10

// ErrInvalidName is returned when a name cannot be stored as a single token.
var ErrInvalidName = errors.New("leaderboard: name must be non-empty and contain no whitespace")

// Entry is one saved score.
type Entry struct {
	Name  string
	Score int
}

// Store is implemented by every leaderboard backend.
type Store interface {
	Save(name string, score int) error
	Top(n int) ([]Entry, error)
}

// Rank returns the n highest entries, highest score first.
// Equal scores keep their input order, so older entries rank above newer ones.
// n <= 0 returns every entry. The input slice is not modified.
func Rank(entries []Entry, n int) []Entry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ValidateName reports whether name can be written as one whitespace-free token.
func ValidateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrInvalidName
	}
	return nil
}

// Truncate shortens name to at most limit runes. limit <= 0 disables truncation.
func Truncate(name string, limit int) string {
	if limit <= 0 {
		return name
	}
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	return string(r[:limit])
}
