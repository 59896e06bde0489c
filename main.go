// main.go
//
// Entry point: load env config, set up logging, load the word pool, and
// run the interactive session. Exit codes: 0 on normal termination
// (including end-of-input), 1 if the word pool fails to load.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/render"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	pool, err := words.FromEnv().Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word pool")
	}
	log.Info().Int("words", len(pool)).Msg("word pool loaded")

	s := session.New(pool, session.NewLineReader(os.Stdin), render.New(os.Stdout))
	if err := s.Run(); err != nil {
		log.Fatal().Err(err).Msg("session exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
