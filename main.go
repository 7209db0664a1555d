// main.go
//
// Entry point for the word game server.
// Startup order: config (.env + YAML + env) → logging → word lists → session store → HTTP.

package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/config"
	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/httpserver"
	"github.com/robalobadob/wordguess/internal/store"
	"github.com/robalobadob/wordguess/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	dict, err := words.Load(words.Source{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
		Length:      cfg.Words.Length,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, accepted := dict.Stats()
	log.Info().Int("answers", answers).Int("accepted", accepted).Int("length", dict.Length()).Msg("word lists loaded")

	st, closeStore := openStore(cfg, dict)
	defer closeStore()

	srv := httpserver.New(st, dict, *cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Info().Str("port", port).Str("store", cfg.Store.Driver).Msg("starting wordguess")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(c config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// openStore picks the session store named by cfg.Store.Driver.
func openStore(cfg *config.Config, dict *words.Dictionary) (store.Store, func()) {
	if cfg.Store.Driver != config.DriverSQLite {
		return store.NewMemoryStore(), func() {}
	}
	salt := cfg.Game.DailySalt
	db, err := store.OpenSQLite(cfg.Store.Path, dict, func(mode string) game.Rand {
		return httpserver.RandFor(mode, salt)
	})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open database")
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}
}
