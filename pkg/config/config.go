// Package config holds the application configuration, loaded from the
// environment via envconfig with optional .env support.
package config

import (
	"time"
)

type DB struct {
	Url            string `envconfig:"URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"infra/migrations"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Admin describes the seeded back-office administrator. The public API has no
// admin registration route; when both fields are set the admin client is
// ensured at startup.
type Admin struct {
	Email    string `envconfig:"EMAIL"`
	Password string `envconfig:"PASSWORD"`
}

type Redis struct {
	URL        string        `envconfig:"URL"`
	ProfileTTL time.Duration `envconfig:"PROFILE_TTL" default:"15m"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Jwt       *Jwt       `envconfig:"JWT"`
	Admin     *Admin     `envconfig:"ADMIN"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
