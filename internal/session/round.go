// internal/session/round.go
//
// One full round: pick a secret, loop over guesses until won/lost,
// render after every turn.

package session

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// playRound runs one round against a uniformly chosen secret. It reports
// false if the round was abandoned by end-of-input, which the caller
// treats as a quit.
func (s *Session) playRound(maxMistakes int) bool {
	secret := words.Random(s.pool)
	r := game.New(secret, maxMistakes)
	log.Debug().Int("max_mistakes", maxMistakes).Int("word_len", len(secret)).
		Msg("round started")

	for !r.Finished {
		s.out.Clear()
		s.out.Frame(r.Pattern(), r.Guessed(), r.Mistakes, r.MaxMistakes)
		s.out.Prompt("Enter your guess (a single letter): ")

		line, err := s.in.ReadLine()
		if err != nil {
			log.Debug().Msg("round abandoned on end-of-input")
			return false
		}
		letter, err := game.NormalizeGuess(line)
		if err != nil {
			s.out.Error(guessErrorMessage(err))
			continue
		}
		if _, err := r.ApplyGuess(letter); err != nil {
			s.out.Error(guessErrorMessage(err))
		}
	}

	s.out.Clear()
	s.out.GameOver(r.Won, r.Secret, r.Mistakes)
	log.Info().Str("outcome", r.State()).Str("word", r.Secret).
		Int("mistakes", r.Mistakes).Msg("round finished")
	return true
}

// guessErrorMessage maps validation errors to player-facing text.
func guessErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidFormat):
		return "Invalid input format. Please enter exactly one letter."
	case errors.Is(err, game.ErrInvalidLetter):
		return "Invalid input. Please enter a letter (a-z)."
	case errors.Is(err, game.ErrDuplicateGuess):
		return "You already guessed that letter. Try a different one."
	default:
		return err.Error()
	}
}
