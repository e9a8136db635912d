package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Upload      UploadConfig
	Broadcast   BroadcastConfig
	Cache       CacheConfig
	CORS        CORSConfig
}

type HTTPConfig struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	APIPrefix       string        `env:"API_PREFIX" envDefault:"/api"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type AuthConfig struct {
	// Backend is "static" for the single configured admin or "db" for the
	// admins table.
	Backend   string        `env:"AUTH_BACKEND" envDefault:"static"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"devsecret"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"24h"`
	// AdminPasswordHash takes precedence over AdminPassword when both are set.
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type UploadConfig struct {
	Dir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
}

// BroadcastConfig selects the step update queue: "memory" keeps deltas in
// process, "redis" fans them out through Redis pub/sub so that several server
// instances share one broadcast domain.
type BroadcastConfig struct {
	Backend    string `env:"BROADCAST_BACKEND" envDefault:"memory"`
	BufferSize int    `env:"BROADCAST_BUFFER_SIZE" envDefault:"256"`
}

// CacheConfig enables the Redis read cache for event documents.
type CacheConfig struct {
	Enabled bool          `env:"EVENT_CACHE_ENABLED" envDefault:"false"`
	TTL     time.Duration `env:"EVENT_CACHE_TTL" envDefault:"1m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
}

// DefaultJWTSecret is the development signing secret. Validate refuses it in
// production.
const DefaultJWTSecret = "devsecret"

var AppConfig *Config

func LoadConfig() *Config {
	// production relies on the process environment only
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		panic(err)
	}

	AppConfig = &cfg
	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		Environment: "test",
		HTTP: HTTPConfig{
			Port:            "0",
			APIPrefix:       "",
			ShutdownTimeout: time.Second,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433", // test DB listens on 5433
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // test Redis listens on 6380
			Password: "",
			DB:       1,
		},
		Auth: AuthConfig{
			Backend:       "static",
			JWTSecret:     "test-secret",
			TokenTTL:      time.Hour,
			AdminUsername: "admin",
			AdminPassword: "rocher2025",
		},
		Upload: UploadConfig{
			Dir:      os.TempDir(),
			MaxBytes: 5 << 20,
		},
		Broadcast: BroadcastConfig{
			Backend:    "memory",
			BufferSize: 16,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
		},
	}
}

// NeedsRedis reports whether any enabled component talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.Broadcast.Backend == "redis" || c.Cache.Enabled
}

// Validate rejects settings that are only acceptable during development.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DefaultJWTSecret) {
		return errors.New("JWT_SECRET must be set to a non-default value in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
