package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"risklegacy/meta"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the simulation settings read from the environment.
type Config struct {
	Goroutines int     `env:"RISK_GOROUTINES"`
	Seed       *uint64 `env:"RISK_SEED"` // Random when unset
	Trials     int     `env:"RISK_TRIALS"`
	Rounds     int     `env:"RISK_ROUNDS"`
	OutputDir  string  `env:"RISK_OUTPUT_DIR" envDefault:"experiments"`
}

// SetupEnvironment loads a .env file if present and configures zerolog
// output and level from ENV and LOGLEVEL.
func SetupEnvironment() {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		level, parseErr := zerolog.ParseLevel(levelStr)
		if parseErr != nil {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			log.Warn().Msgf("unknown LOGLEVEL '%s', defaulting to info", levelStr)
			break
		}
		zerolog.SetGlobalLevel(level)
	}

	// Report on the .env file only once logging is set up
	if err == nil {
		log.Debug().Msg("loaded environment variables from .env file")
	} else {
		log.Debug().Msg("no .env file found, using existing environment variables")
	}
}

// LoadConfig parses the environment into a Config, filling unset counts
// with the package defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Goroutines == 0 {
		cfg.Goroutines = meta.GO_ROUTINES
	}
	if cfg.Trials == 0 {
		cfg.Trials = meta.TRIALS
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = meta.ROUNDS
	}

	if cfg.Goroutines < 0 {
		return nil, fmt.Errorf("RISK_GOROUTINES must be positive, got %d", cfg.Goroutines)
	}
	if cfg.Trials < 0 {
		return nil, fmt.Errorf("RISK_TRIALS must be positive, got %d", cfg.Trials)
	}
	if cfg.Rounds < 0 {
		return nil, fmt.Errorf("RISK_ROUNDS must be positive, got %d", cfg.Rounds)
	}
	return &cfg, nil
}
