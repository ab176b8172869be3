package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds how long a session record survives in the store.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// BookingDelay is the simulated processing latency for booking submissions.
	BookingDelay time.Duration `env:"BOOKING_PROCESSING_DELAY, default=1500ms"`

	Redis RedisConfig
	Mongo MongoConfig
}

// RedisConfig selects the durable session store. An empty Addr keeps
// sessions in process memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MongoConfig selects the catalog backend. An empty URI serves the static
// in-memory catalog.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=saberviver"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
