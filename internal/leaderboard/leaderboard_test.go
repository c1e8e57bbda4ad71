package leaderboard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestRankTopTwoWithTie(t *testing.T) {
	entries := []Entry{{"a", 50}, {"b", 90}, {"c", 90}, {"d", 10}}

	top := Rank(entries, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	names := map[string]bool{top[0].Name: true, top[1].Name: true}
	if !names["b"] || !names["c"] {
		t.Errorf("top 2 should be b and c in either order, got %+v", top)
	}
	if top[0].Score != 90 || top[1].Score != 90 {
		t.Errorf("top 2 scores should both be 90, got %+v", top)
	}
}

func TestRankOrder(t *testing.T) {
	entries := []Entry{{"a", 50}, {"b", 90}, {"c", 90}, {"d", 10}, {"e", 70}}

	got := Rank(entries, 0)
	want := []Entry{{"b", 90}, {"c", 90}, {"e", 70}, {"a", 50}, {"d", 10}}
	if len(got) != len(want) {
		t.Fatalf("Rank returned %d entries, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank %d = %+v, expected %+v", i+1, got[i], want[i])
		}
	}

	// Input is untouched
	if entries[0] != (Entry{"a", 50}) {
		t.Error("Rank should not reorder its input")
	}
}

func TestRankLimits(t *testing.T) {
	entries := []Entry{{"a", 1}, {"b", 2}, {"c", 3}}

	if got := Rank(entries, 10); len(got) != 3 {
		t.Errorf("n larger than input should return everything, got %d", len(got))
	}
	if got := Rank(nil, 10); len(got) != 0 {
		t.Errorf("empty input should rank empty, got %+v", got)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"alice", true},
		{"x_Y-9!", true},
		{"", false},
		{"two words", false},
		{"tab\tname", false},
		{"line\n", false},
	}
	for _, tc := range tests {
		err := ValidateName(tc.name)
		if (err == nil) != tc.valid {
			t.Errorf("ValidateName(%q) = %v, valid %v", tc.name, err, tc.valid)
		}
		if err != nil && !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) should wrap ErrInvalidName", tc.name)
		}
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.txt"), 29)

	entries, err := s.Top(DefaultTop)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("missing file should have no entries, got %+v", entries)
	}
}

func TestFileStoreAppendFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "leaderboard.txt")
	s := NewFileStore(path, 29)

	if err := s.Save("alice", 120); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("bob", 80); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "alice 120\nbob 80\n"; got != want {
		t.Errorf("file content = %q, expected %q", got, want)
	}
}

func TestFileStoreRejectsWhitespaceNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	s := NewFileStore(path, 29)

	if err := s.Save("bad name", 10); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Save with whitespace = %v, expected ErrInvalidName", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected save should not create the file")
	}
}

func TestFileStoreTopRanks(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.txt"), 29)
	for i, score := range []int{30, 10, 50, 20, 40, 60, 5, 70, 15, 25, 35, 45} {
		if err := s.Save("p"+string(rune('a'+i)), score); err != nil {
			t.Fatal(err)
		}
	}

	top, err := s.Top(DefaultTop)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != DefaultTop {
		t.Fatalf("expected %d entries, got %d", DefaultTop, len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("entries out of order at %d: %+v", i, top)
		}
	}
	if top[0].Score != 70 || top[len(top)-1].Score != 15 {
		t.Errorf("unexpected top range: first %d, last %d", top[0].Score, top[len(top)-1].Score)
	}
}

func TestParseStopsAtMalformedLine(t *testing.T) {
	input := "alice 10\nbob 20\ncarol notanumber\ndave 40\n"

	entries, err := Parse(strings.NewReader(input), 29)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected parsing to stop after 2 entries, got %+v", entries)
	}
	if entries[1] != (Entry{"bob", 20}) {
		t.Errorf("second entry = %+v, expected bob 20", entries[1])
	}
}

func TestParseIgnoresDanglingName(t *testing.T) {
	entries, err := Parse(strings.NewReader("alice 10\nbob"), 29)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dangling name should be ignored, got %+v", entries)
	}
}

func TestParseTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("n", 40)
	entries, err := Parse(strings.NewReader(long+" 7\n"), 29)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || len(entries[0].Name) != 29 {
		t.Errorf("name should be truncated to 29 characters, got %+v", entries)
	}
}

func TestFileStoreKeepsEntriesBeforeOversizedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.txt")
	data := "alice 10\nbob 20\n" + strings.Repeat("x", 70000) + " 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	top, err := NewFileStore(path, 29).Top(10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected the 2 entries before the oversized name, got %+v", top)
	}
	if top[0] != (Entry{"bob", 20}) {
		t.Errorf("top[0] = %+v, expected bob 20", top[0])
	}
}

func TestFileStoreClear(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.txt"), 29)
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	if err := s.Save("alice", 10); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("leaderboard file should be gone, stat error = %v", err)
	}
	all, err := s.All()
	if err != nil || len(all) != 0 {
		t.Errorf("All() after Clear = %+v, %v", all, err)
	}
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.txt"), 29)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := s.Save("player", score); err != nil {
				t.Errorf("Save: %v", err)
			}
		}(i)
	}
	wg.Wait()

	all, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 20 {
		t.Errorf("expected 20 intact entries, got %d", len(all))
	}
}
