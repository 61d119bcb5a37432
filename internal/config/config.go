// internal/config/config.go
//
// Process configuration: a .env file is loaded in development (if present),
// then the environment is parsed into a typed struct.

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// WordsFile overrides the embedded dictionary. When set, a missing
	// or unreadable file aborts startup.
	WordsFile string `env:"WORDS_FILE"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/solves.db"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"1h"`
}

// Load reads .env (best effort) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
