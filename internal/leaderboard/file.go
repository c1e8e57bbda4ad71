package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileStore keeps scores in a plain text file, one "<name> <score>" pair per line.
// The file is opened and closed on every call. A mutex serializes calls made
// through the same FileStore, e.g. from concurrent SSH sessions.
type FileStore struct {
	path      string
	nameLimit int
	mu        sync.Mutex
}

// NewFileStore returns a store backed by path. Names read back from the file
// are truncated to nameLimit runes (0 keeps them whole).
func NewFileStore(path string, nameLimit int) *FileStore {
	return &FileStore{path: path, nameLimit: nameLimit}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save appends one entry to the file, creating it if needed.
func (s *FileStore) Save(name string, score int) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leaderboard: failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("leaderboard: failed to open %s: %w", s.path, err)
	}
	if _, err := fmt.Fprintf(f, "%s %d\n", name, score); err != nil {
		f.Close()
		return fmt.Errorf("leaderboard: failed to append: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("leaderboard: failed to close %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the leaderboard file. Clearing a missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("leaderboard: failed to clear %s: %w", s.path, err)
	}
	return nil
}

// All returns every entry in file order. A missing file yields no entries.
func (s *FileStore) All() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leaderboard: failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := Parse(f, s.nameLimit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: failed to read %s: %w", s.path, err)
	}
	return entries, nil
}

// Top returns the n best entries.
func (s *FileStore) Top(n int) ([]Entry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	return Rank(entries, n), nil
}

// Parse reads whitespace-separated name/score pairs from r.
// Reading stops silently at the first pair whose score is not an integer,
// whose score is missing, or that holds a token too long to scan; everything
// before it is returned.
func Parse(r io.Reader, nameLimit int) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var entries []Entry
	for sc.Scan() {
		name := sc.Text()
		if !sc.Scan() {
			break
		}
		score, err := strconv.Atoi(sc.Text())
		if err != nil {
			break
		}
		entries = append(entries, Entry{Name: Truncate(name, nameLimit), Score: score})
	}
	if err := sc.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return entries, err
	}
	return entries, nil
}
