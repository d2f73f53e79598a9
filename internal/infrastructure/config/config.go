package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Book read-access policies. Catalog mutations always require ADMIN; reads
// are governed by this setting.
const (
	BookReadPublic        = "public"
	BookReadAuthenticated = "authenticated"
	BookReadAdmin         = "admin"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs identity tokens. Keep it stable across restarts so
	// issued tokens survive a redeploy; when empty, a random per-process key
	// is generated at startup and previously issued tokens are invalidated.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=30m"`

	// BookReadAccess controls who may read the catalog:
	// public | authenticated | admin.
	BookReadAccess string `env:"BOOK_READ_ACCESS, default=authenticated"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig holds the bootstrap ADMIN credentials. Public registration only
// creates USER accounts; the seed runs at startup and is skipped entirely
// when either value is unset.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bookstore"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,  default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if !validReadAccess(cfg.BookReadAccess) {
		panic(fmt.Sprintf("config: invalid BOOK_READ_ACCESS %q", cfg.BookReadAccess))
	}
	return &cfg
}

func validReadAccess(policy string) bool {
	switch policy {
	case BookReadPublic, BookReadAuthenticated, BookReadAdmin:
		return true
	}
	return false
}
