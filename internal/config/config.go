package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	RedisURL    string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	Version     string `envconfig:"VERSION" default:"dev"`
	SeedFile    string `envconfig:"SEED_FILE" default:""`

	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"12"`

	PageSize              int           `envconfig:"PAGE_SIZE" default:"10"`
	ContextIdleTTL        time.Duration `envconfig:"CONTEXT_IDLE_TTL" default:"30m"`
	JanitorInterval       time.Duration `envconfig:"JANITOR_INTERVAL" default:"1m"`
	SessionResolveTimeout time.Duration `envconfig:"SESSION_RESOLVE_TIMEOUT" default:"3s"`
	CookieSecure          bool          `envconfig:"COOKIE_SECURE" default:"false"`

	// LoginRate is the sustained number of login attempts per second allowed
	// for one browsing context.
	LoginRate  float64 `envconfig:"LOGIN_RATE" default:"0.2"`
	LoginBurst int     `envconfig:"LOGIN_BURST" default:"5"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
