// internal/render/render.go
//
// Terminal renderer for the hangman session. This is a pure sink: every
// method writes a function of its arguments to the output writer, so
// re-rendering the same state produces identical bytes. Write failures are
// ignored; drawing is never part of game logic.
//
// The gallows art has 7 fixed stages indexed by mistake count, clamped at
// the final stage for any count past it, independent of the round's
// mistake budget.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// clearLines is how far the previous frame is scrolled away.
const clearLines = 50

var stages = [...]string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Stage returns the gallows art for a mistake count, clamped to the final
// stage for any count at or past the end of the art.
func Stage(mistakes int) string {
	if mistakes < 0 {
		mistakes = 0
	}
	if mistakes >= len(stages) {
		mistakes = len(stages) - 1
	}
	return stages[mistakes]
}

// Renderer writes game frames to out.
type Renderer struct{ out io.Writer }

// New constructs a Renderer targeting out.
func New(out io.Writer) *Renderer { return &Renderer{out: out} }

// Clear scrolls previous output away with a blank-line flood.
func (r *Renderer) Clear() {
	_, _ = io.WriteString(r.out, strings.Repeat("\n", clearLines))
}

// Frame draws the complete per-turn view: gallows, mistake tally, spaced
// reveal pattern, and the letters tried so far.
func (r *Renderer) Frame(pattern, guessed string, mistakes, maxMistakes int) {
	fmt.Fprintln(r.out, titleStyle.Render("--- HANGMAN ---"))
	fmt.Fprintln(r.out, Stage(mistakes))
	fmt.Fprintf(r.out, "Incorrect guesses: %d/%d\n", mistakes, maxMistakes)
	fmt.Fprintf(r.out, "Word: %s\n", spaced(pattern))
	fmt.Fprintf(r.out, "Incorrect guesses remaining: %d\n", maxMistakes-mistakes)
	fmt.Fprintf(r.out, "Guessed letters: %s\n", guessed)
}

// GameOver draws the final gallows and the win/loss banner. The secret is
// always shown, so a lost round still reveals the full word.
func (r *Renderer) GameOver(won bool, secret string, mistakes int) {
	fmt.Fprintln(r.out, titleStyle.Render("--- Game Over ---"))
	fmt.Fprintln(r.out, Stage(mistakes))
	if won {
		fmt.Fprintln(r.out, winStyle.Render("Congratulations! You guessed the word: "+secret))
	} else {
		fmt.Fprintln(r.out, lossStyle.Render("Sorry, you ran out of guesses. The word was: "+secret))
	}
}

// Notice prints an informational line (difficulty confirmations, goodbyes).
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, noticeStyle.Render(msg))
}

// Error prints a recoverable input error before the turn is re-prompted.
func (r *Renderer) Error(msg string) {
	fmt.Fprintln(r.out, errorStyle.Render(msg))
}

// Prompt prints an inline prompt without a trailing newline.
func (r *Renderer) Prompt(msg string) {
	_, _ = io.WriteString(r.out, msg)
}

// spaced joins pattern characters with spaces for readability.
func spaced(pattern string) string {
	return strings.Join(strings.Split(pattern, ""), " ")
}
