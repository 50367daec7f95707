package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Console ConsoleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=admin_console"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ConsoleConfig holds settings for the terminal admin console.
type ConsoleConfig struct {
	// APIBaseURL is the base URL of the admin REST API.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// RequestTimeout bounds every outgoing API call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=10s"`
	// SessionFile is where the logged-in principal is persisted.
	// Empty means "$HOME/.admin-console/session.json".
	SessionFile string `env:"SESSION_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
