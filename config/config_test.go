package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.APIPrefix)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "memory", cfg.Broadcast.Backend)
	assert.Equal(t, "static", cfg.Auth.Backend)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.NeedsRedis())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("BROADCAST_BACKEND", "redis")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "redis", cfg.Broadcast.Backend)
	assert.True(t, cfg.NeedsRedis())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Same(t, AppConfig, cfg)
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig()

	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.NeedsRedis())
}

func TestNeedsRedis_Cache(t *testing.T) {
	cfg := LoadTestConfig()
	cfg.Cache.Enabled = true

	assert.True(t, cfg.NeedsRedis())
}

func TestValidate_JWTSecret(t *testing.T) {
	t.Run("default secret rejected in production", func(t *testing.T) {
		t.Setenv("GO_ENV", "production")

		cfg := LoadConfig()

		assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty secret rejected in production", func(t *testing.T) {
		t.Setenv("GO_ENV", "production")

		cfg := LoadConfig()
		cfg.Auth.JWTSecret = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("explicit secret accepted in production", func(t *testing.T) {
		t.Setenv("GO_ENV", "production")
		t.Setenv("JWT_SECRET", "a-long-random-value")

		cfg := LoadConfig()

		assert.NoError(t, cfg.Validate())
	})

	t.Run("default secret allowed outside production", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Auth.JWTSecret = DefaultJWTSecret

		assert.NoError(t, cfg.Validate())
	})
}
