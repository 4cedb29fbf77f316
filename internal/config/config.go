package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment
type Config struct {
	// ListenAddr is the HTTP listen address
	ListenAddr string `env:"ONEMORNING_LISTEN_ADDR" envDefault:":8080"`

	// RedisAddr is the Redis host:port
	RedisAddr string `env:"ONEMORNING_REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is optional
	RedisPassword string `env:"ONEMORNING_REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database
	RedisDB int `env:"ONEMORNING_REDIS_DB" envDefault:"0"`

	// TokenSecret signs guest tokens, required
	TokenSecret string `env:"ONEMORNING_TOKEN_SECRET,required,notEmpty"`

	// TokenTTL is how long a guest token stays valid
	TokenTTL time.Duration `env:"ONEMORNING_TOKEN_TTL" envDefault:"24h"`

	// DiscussionSeconds is the day-phase countdown length
	DiscussionSeconds int `env:"ONEMORNING_DISCUSSION_SECONDS" envDefault:"120"`

	// Debug enables development logging and gin debug mode
	Debug bool `env:"ONEMORNING_DEBUG" envDefault:"false"`
}

// Load reads configuration from the environment. A .env file is loaded first
// when present; real environment variables win over file entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
