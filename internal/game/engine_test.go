package game

import (
	"errors"
	"strings"
	"testing"
)

func TestApplyGuessRevealsPattern(t *testing.T) {
	r := New("cat", 6)
	steps := []struct {
		letter  byte
		pattern string
		state   string
	}{
		{'a', "_a_", "playing"},
		{'c', "ca_", "playing"},
		{'t', "cat", "won"},
	}
	for _, step := range steps {
		correct, err := r.ApplyGuess(step.letter)
		if err != nil {
			t.Fatalf("ApplyGuess(%q): %v", step.letter, err)
		}
		if !correct {
			t.Errorf("ApplyGuess(%q) reported a miss", step.letter)
		}
		if got := r.Pattern(); got != step.pattern {
			t.Errorf("pattern after %q = %q, want %q", step.letter, got, step.pattern)
		}
		if got := r.State(); got != step.state {
			t.Errorf("state after %q = %q, want %q", step.letter, got, step.state)
		}
	}
	if r.Mistakes != 0 {
		t.Errorf("mistakes = %d, want 0", r.Mistakes)
	}
}

func TestLossOnExactBudget(t *testing.T) {
	r := New("dog", 2)

	if correct, err := r.ApplyGuess('x'); err != nil || correct {
		t.Fatalf("ApplyGuess(x) = %v, %v", correct, err)
	}
	if r.State() != "playing" {
		t.Fatalf("lost after one mistake with budget 2")
	}
	if _, err := r.ApplyGuess('y'); err != nil {
		t.Fatalf("ApplyGuess(y): %v", err)
	}
	if r.State() != "lost" {
		t.Fatalf("state = %q, want lost after exhausting budget", r.State())
	}
	// The round is terminal; a third letter must be refused.
	if _, err := r.ApplyGuess('z'); !errors.Is(err, ErrRoundOver) {
		t.Errorf("ApplyGuess after loss: err = %v, want ErrRoundOver", err)
	}
	if r.Mistakes != 2 {
		t.Errorf("mistakes = %d, want 2", r.Mistakes)
	}
}

func TestDuplicateGuessIsNoOp(t *testing.T) {
	r := New("dog", 6)
	for _, letter := range []byte{'x', 'd'} {
		if _, err := r.ApplyGuess(letter); err != nil {
			t.Fatalf("ApplyGuess(%q): %v", letter, err)
		}
		pattern, guessed, mistakes := r.Pattern(), r.Guessed(), r.Mistakes

		_, err := r.ApplyGuess(letter)
		if !errors.Is(err, ErrDuplicateGuess) {
			t.Fatalf("repeat ApplyGuess(%q): err = %v, want ErrDuplicateGuess", letter, err)
		}
		if r.Pattern() != pattern || r.Guessed() != guessed || r.Mistakes != mistakes {
			t.Errorf("repeat ApplyGuess(%q) mutated state", letter)
		}
		if r.State() != "playing" {
			t.Errorf("repeat ApplyGuess(%q) changed state to %q", letter, r.State())
		}
	}
}

func TestNormalizeGuess(t *testing.T) {
	cases := []struct {
		raw     string
		letter  byte
		wantErr error
	}{
		{"a", 'a', nil},
		{"Z", 'z', nil},
		{"  q  ", 'q', nil},
		{"b\n", 'b', nil},
		{"", 0, ErrInvalidFormat},
		{"   ", 0, ErrInvalidFormat},
		{"ab", 0, ErrInvalidFormat},
		{"7", 0, ErrInvalidLetter},
		{"!", 0, ErrInvalidLetter},
		{"é", 0, ErrInvalidLetter},
	}
	for _, c := range cases {
		letter, err := NormalizeGuess(c.raw)
		if !errors.Is(err, c.wantErr) {
			t.Errorf("NormalizeGuess(%q): err = %v, want %v", c.raw, err, c.wantErr)
			continue
		}
		if err == nil && letter != c.letter {
			t.Errorf("NormalizeGuess(%q) = %q, want %q", c.raw, letter, c.letter)
		}
	}
}

func TestFullCoverageWins(t *testing.T) {
	for _, secret := range []string{"a", "go", "banana", "keyboard"} {
		r := New(secret, 4)
		for _, letter := range distinctLetters(secret) {
			if r.Finished {
				break
			}
			if correct, err := r.ApplyGuess(letter); err != nil || !correct {
				t.Fatalf("%q: ApplyGuess(%q) = %v, %v", secret, letter, correct, err)
			}
		}
		if r.State() != "won" {
			t.Errorf("%q: state = %q, want won", secret, r.State())
		}
		if r.Pattern() != secret {
			t.Errorf("%q: pattern = %q", secret, r.Pattern())
		}
		if r.Mistakes != 0 {
			t.Errorf("%q: mistakes = %d, want 0", secret, r.Mistakes)
		}
	}
}

func TestRepeatedLettersRevealTogether(t *testing.T) {
	r := New("banana", 6)
	if _, err := r.ApplyGuess('a'); err != nil {
		t.Fatalf("ApplyGuess(a): %v", err)
	}
	if got := r.Pattern(); got != "_a_a_a" {
		t.Errorf("pattern = %q, want _a_a_a", got)
	}
}

func TestGuessedKeepsOrder(t *testing.T) {
	r := New("cat", 6)
	for _, letter := range []byte{'z', 'a', 'm'} {
		if _, err := r.ApplyGuess(letter); err != nil {
			t.Fatalf("ApplyGuess(%q): %v", letter, err)
		}
	}
	if got := r.Guessed(); got != "zam" {
		t.Errorf("Guessed() = %q, want zam", got)
	}
}

// distinctLetters returns the unique letters of w in first-seen order.
func distinctLetters(w string) []byte {
	var out []byte
	for i := 0; i < len(w); i++ {
		if !strings.Contains(string(out), string(w[i])) {
			out = append(out, w[i])
		}
	}
	return out
}
