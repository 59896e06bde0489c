// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Round: state for a single in-progress or finished round.
//   - The validation/state errors surfaced by NormalizeGuess and ApplyGuess.

package game

import "errors"

// Guess errors. All are recoverable: the caller shows a message and
// re-prompts without charging a mistake.
var (
	ErrInvalidFormat  = errors.New("input is not exactly one character")
	ErrInvalidLetter  = errors.New("input is not a letter a-z")
	ErrDuplicateGuess = errors.New("letter already guessed")
	ErrRoundOver      = errors.New("round already finished")
)

// Round holds the state of a single hangman round.
type Round struct {
	Secret      string // The solution word (always lowercase).
	MaxMistakes int    // Incorrect guesses allowed before the round is lost.
	Mistakes    int    // Incorrect guesses made so far.
	Finished    bool   // True once the round is over (won or lost).
	Won         bool   // True if the round finished with a win.

	pattern []byte   // Reveal pattern, '_' for hidden positions.
	guessed []byte   // Guessed letters in the order they were tried.
	seen    [26]bool // Fast membership check for guessed letters.
}
