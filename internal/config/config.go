// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	RNGURL      string        `env:"RNG_URL" envDefault:"https://www.random.org/integers/"`
	RNGTimeout  time.Duration `env:"RNG_TIMEOUT" envDefault:"5s"`
	RNGMaxTries uint          `env:"RNG_MAX_TRIES" envDefault:"3"`
	RNGPort     int           `env:"RNG_PORT" envDefault:"5175"`

	ScoreDB    string        `env:"SCORE_DB"`
	Player     string        `env:"MASTERMIND_PLAYER" envDefault:"default"`
	Keywords   []string      `env:"MASTERMIND_KEYWORDS" envSeparator:"," envDefault:"/hint,/guess_history,/hint_history,/score"`
	IntroDelay time.Duration `env:"MASTERMIND_INTRO_DELAY" envDefault:"1500ms"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env files (if present) and parses the environment into a Config.
// Variables already set in the process environment win over .env values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ScoreDBPath returns ScoreDB or ~/.mastermind/score.db when unset.
func (c Config) ScoreDBPath() string {
	if c.ScoreDB != "" {
		return c.ScoreDB
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mastermind", "score.db")
	}
	return filepath.Join(home, ".mastermind", "score.db")
}
