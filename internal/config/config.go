// Package config loads the bot settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the bot reads at startup
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis backs the results ledger. Empty address disables it.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	ResultsTTL    time.Duration `env:"RPS_RESULTS_TTL" envDefault:"0s"`

	// Game
	GameDuration    time.Duration `env:"RPS_GAME_DURATION" envDefault:"30s"`
	MinParticipants int           `env:"RPS_MIN_PARTICIPANTS" envDefault:"2"`

	// Loser rounds
	MinMembers       int  `env:"RPS_MIN_MEMBERS" envDefault:"3"`
	EnumerationLimit int  `env:"RPS_ENUMERATION_LIMIT" envDefault:"200"`
	ExcludeAdmins    bool `env:"RPS_EXCLUDE_ADMINS" envDefault:"false"`

	// RandomSeed makes draws reproducible, zero seeds from crypto/rand
	RandomSeed int64 `env:"RPS_RANDOM_SEED"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads the given .env files, if they exist, then parses the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no component can run with
func (c *Config) Validate() error {
	if c.GameDuration <= 0 {
		return errors.New("RPS_GAME_DURATION must be positive")
	}
	if c.MinParticipants < 1 {
		return errors.New("RPS_MIN_PARTICIPANTS must be at least 1")
	}
	if c.MinMembers < 1 {
		return errors.New("RPS_MIN_MEMBERS must be at least 1")
	}
	if c.EnumerationLimit < 1 {
		return errors.New("RPS_ENUMERATION_LIMIT must be at least 1")
	}
	if c.ResultsTTL < 0 {
		return errors.New("RPS_RESULTS_TTL cannot be negative")
	}
	return nil
}

// ResultsEnabled reports whether a Redis ledger is configured
func (c *Config) ResultsEnabled() bool {
	return c.RedisAddr != ""
}
