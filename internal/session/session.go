// internal/session/session.go
//
// Session control for the hangman game: difficulty selection and the
// replay loop across rounds.
//
// End-of-input anywhere unwinds cleanly: at the difficulty or rematch
// prompts it ends the session; mid-round it abandons the round and then
// ends the session. It is a control signal, never an error.

package session

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/hangman/internal/render"
)

// LineReader supplies one line of raw user input per prompt.
// ReadLine returns the line without its trailing newline, or io.EOF once
// input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// scanReader adapts a bufio.Scanner to LineReader.
type scanReader struct{ sc *bufio.Scanner }

// NewLineReader wraps r in a buffered LineReader.
func NewLineReader(r io.Reader) LineReader {
	return &scanReader{sc: bufio.NewScanner(r)}
}

func (s *scanReader) ReadLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// Difficulty tiers: the menu offers exactly these three.
const (
	EasyMistakes   = 8
	MediumMistakes = 6
	HardMistakes   = 4
)

// Session drives difficulty selection and the replay loop over a shared,
// read-only word pool.
type Session struct {
	pool []string
	in   LineReader
	out  *render.Renderer
}

// New constructs a session over a non-empty word pool.
func New(pool []string, in LineReader, out *render.Renderer) *Session {
	return &Session{pool: pool, in: in, out: out}
}

// Run plays rounds until the player quits or input ends. It returns nil on
// every normal termination path.
func (s *Session) Run() error {
	s.out.Notice("Welcome to Hangman!")
	for {
		maxMistakes, ok := s.chooseDifficulty()
		if !ok {
			break
		}
		if finished := s.playRound(maxMistakes); !finished {
			break // round abandoned on end-of-input
		}
		if !s.askPlayAgain() {
			break
		}
	}
	s.out.Notice("Thanks for playing!")
	return nil
}

// chooseDifficulty prompts for one of the three tiers. Any unparseable or
// out-of-range reply deliberately falls back to Medium with a notice — no
// re-prompt loop. Only end-of-input (ok=false) stops the session.
func (s *Session) chooseDifficulty() (int, bool) {
	s.out.Prompt("\n--- Select Difficulty ---\n" +
		"1. Easy   (8 incorrect guesses)\n" +
		"2. Medium (6 incorrect guesses)\n" +
		"3. Hard   (4 incorrect guesses)\n" +
		"Enter your choice (1-3): ")
	line, err := s.in.ReadLine()
	if err != nil {
		return 0, false
	}
	choice, _ := strconv.Atoi(strings.TrimSpace(line))
	switch choice {
	case 1:
		s.out.Notice("-> Easy difficulty selected (8 guesses).")
		return EasyMistakes, true
	case 2:
		s.out.Notice("-> Medium difficulty selected (6 guesses).")
		return MediumMistakes, true
	case 3:
		s.out.Notice("-> Hard difficulty selected (4 guesses).")
		return HardMistakes, true
	default:
		s.out.Notice("Invalid choice. Defaulting to Medium difficulty (6 guesses).")
		return MediumMistakes, true
	}
}

// askPlayAgain reads the rematch reply. Only a reply whose first character
// case-folds to 'y' continues; end-of-input or anything else quits.
func (s *Session) askPlayAgain() bool {
	s.out.Prompt("\nPlay Again? (y/n): ")
	line, err := s.in.ReadLine()
	if err != nil {
		return false
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y')
}
