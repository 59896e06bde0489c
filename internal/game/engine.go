// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create new rounds from a secret word and a mistake budget.
//   - Validate raw input down to a single lowercase letter.
//   - Apply guesses: reveal matching positions or charge a mistake.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word pools live in the words package; the engine only ever sees the
//     one secret it was constructed with.
//   - Won/Lost are terminal: ApplyGuess refuses input after either.

package game

import (
	"bytes"
	"strings"
	"unicode"
)

// placeholder marks a hidden position in the reveal pattern.
const placeholder = '_'

// New constructs a round for secret with the given mistake budget.
// The secret is lowercased; the reveal pattern starts fully hidden.
func New(secret string, maxMistakes int) *Round {
	secret = strings.ToLower(secret)
	p := make([]byte, len(secret))
	for i := range p {
		p[i] = placeholder
	}
	return &Round{Secret: secret, MaxMistakes: maxMistakes, pattern: p}
}

// NormalizeGuess reduces a raw input line to a single lowercase letter.
//
// Validation rules:
//   - After trimming whitespace the input must be exactly one character.
//   - That character, case-folded, must be an ASCII letter a-z.
//
// No state is touched; failures map to ErrInvalidFormat / ErrInvalidLetter.
func NormalizeGuess(raw string) (byte, error) {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) != 1 {
		return 0, ErrInvalidFormat
	}
	r := unicode.ToLower(runes[0])
	if r < 'a' || r > 'z' {
		return 0, ErrInvalidLetter
	}
	return byte(r), nil
}

// ApplyGuess applies a normalized letter to the round, mutating its state.
// Returns whether the guess revealed at least one position.
//
// Rules:
//   - The round must still be playing.
//   - A repeated letter is ErrDuplicateGuess and changes nothing.
//   - A miss charges exactly one mistake. An exhausted budget loses the
//     round; a fully revealed pattern wins it. Lost is checked first: the
//     two cannot co-occur since only misses charge mistakes.
func (r *Round) ApplyGuess(letter byte) (bool, error) {
	if r.Finished {
		return false, ErrRoundOver
	}
	i := int(letter) - 'a'
	if i < 0 || i > 25 {
		return false, ErrInvalidLetter
	}
	if r.seen[i] {
		return false, ErrDuplicateGuess
	}
	r.seen[i] = true
	r.guessed = append(r.guessed, letter)

	correct := false
	for j := 0; j < len(r.Secret); j++ {
		if r.Secret[j] == letter {
			r.pattern[j] = letter
			correct = true
		}
	}
	if !correct {
		r.Mistakes++
	}

	switch {
	case r.Mistakes >= r.MaxMistakes:
		r.Finished = true
	case bytes.IndexByte(r.pattern, placeholder) < 0:
		r.Finished, r.Won = true, true
	}
	return correct, nil
}

// Pattern returns the current reveal pattern, '_' for hidden positions.
func (r *Round) Pattern() string { return string(r.pattern) }

// Guessed returns the guessed letters in the order they were tried.
func (r *Round) Guessed() string { return string(r.guessed) }

// Remaining reports how many incorrect guesses are left.
func (r *Round) Remaining() int { return r.MaxMistakes - r.Mistakes }

// State reports a coarse string representation of the round state.
func (r *Round) State() string {
	if r.Finished {
		if r.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
