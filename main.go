package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solverkit/wordle/internal/config"
	"github.com/solverkit/wordle/internal/httpserver"
	"github.com/solverkit/wordle/internal/results"
	"github.com/solverkit/wordle/internal/session"
	"github.com/solverkit/wordle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var dict *words.List
	if cfg.WordsFile != "" {
		dict, err = words.Load(cfg.WordsFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.WordsFile).Msg("failed to load word list")
		}
	} else {
		dict = words.Default()
	}

	history, err := results.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open results database")
	}
	defer history.Close()

	srv := httpserver.New(dict, session.NewMemoryStore(), history, cfg.SessionSecret, cfg.SessionTTL)
	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting solver service")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
