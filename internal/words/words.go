// internal/words/words.go
//
// Word pool management for the hangman session.
//
// Responsibilities:
//   - Load the candidate word pool from a file, a SQLite database, or an
//     embedded default list, selected by environment variables.
//   - Normalize words: lowercase, newline-stripped, blank lines skipped
//     (skipped lines are not counted).
//   - Supply Random for uniform secret-word selection.
//
// Environment variables:
//   WORDS_DB=/path/to/words.db     (takes precedence)
//   WORDS_FILE=/path/to/words.txt
//
// With neither set, the embedded default list is used so the game runs out
// of the box.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// Load errors. Callers treat either as fatal before the first round.
var (
	ErrNotFound = errors.New("words: source not found")
	ErrEmpty    = errors.New("words: no usable words")
)

// Source supplies the candidate word pool for a session.
// Load returns at least one word or an error, and releases any underlying
// resource before returning.
type Source interface {
	Load() ([]string, error)
}

// FromEnv selects a Source from WORDS_DB / WORDS_FILE, falling back to the
// embedded default list.
func FromEnv() Source {
	if dsn := os.Getenv("WORDS_DB"); dsn != "" {
		return &DBSource{DSN: dsn}
	}
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return &FileSource{Path: path}
	}
	return embeddedSource{}
}

// FileSource reads one word per line from a plain text file.
type FileSource struct{ Path string }

// Load reads the file, skipping blank lines and lowercasing the rest.
func (s *FileSource) Load() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, s.Path)
	}
	return out, nil
}

// embeddedSource serves the compiled-in default list.
type embeddedSource struct{}

func (embeddedSource) Load() ([]string, error) {
	var out []string
	for _, line := range strings.Split(embeddedWords, "\n") {
		if w := normalize(line); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// normalize trims a raw line and lowercases it; blank lines become "".
func normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// Random returns a uniformly random word from pool.
// The pool must be non-empty, which Load guarantees.
func Random(pool []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	return pool[n.Int64()]
}
