package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Game variants.
const (
	GameHangman = "hangman"
	GameRPS     = "rps"
)

// Word sources.
const (
	WordSourceHTTP  = "http"
	WordSourceList  = "list"
	WordSourceDaily = "daily"
)

type Config struct {
	Game     string
	LogLevel string

	WordSource       string
	RandomWordURL    string
	WordFetchTimeout time.Duration
	WordsFile        string
	DailySalt        string

	// DatabasePath selects SQLite persistence; empty keeps state in memory.
	DatabasePath string

	RPSMaxScore int
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Game:          strings.ToLower(strings.TrimSpace(os.Getenv("GAME"))),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		WordSource:    strings.ToLower(strings.TrimSpace(os.Getenv("WORD_SOURCE"))),
		RandomWordURL: strings.TrimSpace(os.Getenv("RANDOM_WORD_URL")),
		WordsFile:     strings.TrimSpace(os.Getenv("WORDS_FILE")),
		DailySalt:     os.Getenv("DAILY_SALT"),
		DatabasePath:  strings.TrimSpace(os.Getenv("DATABASE_PATH")),
	}
	if cfg.Game == "" {
		cfg.Game = GameHangman
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.WordSource == "" {
		cfg.WordSource = WordSourceList
		if cfg.RandomWordURL != "" {
			cfg.WordSource = WordSourceHTTP
		}
	}
	if cfg.DailySalt == "" {
		cfg.DailySalt = "local_dev_salt"
	}

	var invalid []string

	timeoutMs := int64(5000)
	if v := strings.TrimSpace(os.Getenv("WORD_FETCH_TIMEOUT_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			timeoutMs = n
		} else {
			invalid = append(invalid, "WORD_FETCH_TIMEOUT_MS")
		}
	}
	cfg.WordFetchTimeout = time.Duration(timeoutMs) * time.Millisecond

	cfg.RPSMaxScore = 5
	if v := strings.TrimSpace(os.Getenv("RPS_MAX_SCORE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RPSMaxScore = n
		} else {
			invalid = append(invalid, "RPS_MAX_SCORE")
		}
	}

	switch cfg.Game {
	case GameHangman, GameRPS:
	default:
		invalid = append(invalid, "GAME")
	}
	switch cfg.WordSource {
	case WordSourceList, WordSourceDaily:
	case WordSourceHTTP:
		if cfg.RandomWordURL == "" {
			invalid = append(invalid, "RANDOM_WORD_URL")
		}
	default:
		invalid = append(invalid, "WORD_SOURCE")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("missing/invalid env: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}
