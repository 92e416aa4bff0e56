package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/textgames/assets"
	"github.com/robalobadob/textgames/internal/config"
	"github.com/robalobadob/textgames/internal/console"
	"github.com/robalobadob/textgames/internal/hangman"
	"github.com/robalobadob/textgames/internal/rps"
	"github.com/robalobadob/textgames/internal/session"
	"github.com/robalobadob/textgames/internal/store"
	"github.com/robalobadob/textgames/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reg *session.Registry
	switch cfg.Game {
	case config.GameRPS:
		reg = session.New(rps.NewFactory(cfg.RPSMaxScore), session.WithPairing())
	default:
		src, err := wordSource(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("word source")
		}
		st, closeStore, err := openStore(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("store")
		}
		defer closeStore()
		reg = session.New(hangman.NewFactory(src, st))
	}

	log.Info().Str("game", cfg.Game).Str("words", cfg.WordSource).Msg("starting console")
	if err := console.Run(ctx, os.Stdin, os.Stdout, reg); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("console exited")
	}
}

func wordSource(cfg config.Config) (words.Source, error) {
	if cfg.WordSource == config.WordSourceHTTP {
		return words.NewHTTP(cfg.RandomWordURL, cfg.WordFetchTimeout), nil
	}
	list, err := words.LoadList(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	if cfg.WordSource == config.WordSourceDaily {
		return words.NewDaily(list, cfg.DailySalt), nil
	}
	return list, nil
}

func openStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.DatabasePath == "" {
		return store.NewMemoryStore(), func() {}, nil
	}
	db, err := store.OpenSQLite(cfg.DatabasePath, assets.Migrations())
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("db close")
		}
	}, nil
}
