package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration, loaded once at startup. JWTSecret
// is the token signing key: it is required, immutable for the process
// lifetime, and must never be logged.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	LoginMaxAttempts   int64         `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	LoginAttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
	LoginLockout       time.Duration `env:"LOGIN_LOCKOUT,        default=30m"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=forum"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
