package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_SECRET", "REDIS_URL", "JWT_EXPIRE",
		"CACHE_SIZE", "CACHE_TTL", "CORS_ALLOWED_ORIGINS", "PUBLIC_RATE_LIMIT", "PUBLIC_RATE_BURST",
	} {
		// Setenv восстановит исходное значение после теста.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	conf, err := LoadConfig([]string{"-d", "postgres://localhost/receipts", "-j", "0123456789"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", conf.RunAddress)
	assert.Equal(t, "postgres://localhost/receipts", conf.DatabaseDSN)
	assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
	assert.Empty(t, conf.RedisURL)
	assert.Equal(t, time.Hour, conf.JWTExpire)
	assert.Equal(t, 1024, conf.CacheSize)
	assert.Equal(t, 10*time.Minute, conf.CacheTTL)
	assert.Empty(t, conf.CORSAllowedOrigins)
	assert.InDelta(t, 5, conf.PublicRateLimit, 0)
	assert.Equal(t, 10, conf.PublicRateBurst)
}

func TestLoadConfigEnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URI", "postgres://env/receipts")
	t.Setenv("JWT_SECRET", "env-secret-key")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_EXPIRE", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, http://localhost:3000")
	t.Setenv("PUBLIC_RATE_LIMIT", "0.5")

	conf, err := LoadConfig([]string{"-a", ":8081", "-d", "postgres://flag/receipts", "-j", "flag-secret-key"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.RunAddress)
	assert.Equal(t, "postgres://env/receipts", conf.DatabaseDSN)
	assert.Equal(t, "env-secret-key", conf.JWTUserSecret)
	assert.Equal(t, "redis://localhost:6379/0", conf.RedisURL)
	assert.Equal(t, 15*time.Minute, conf.JWTExpire)
	assert.Equal(t, []string{"https://shop.example", "http://localhost:3000"}, conf.CORSAllowedOrigins)
	assert.InDelta(t, 0.5, conf.PublicRateLimit, 0)
}

func TestLoadConfigWildcardOrigin(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	conf, err := LoadConfig([]string{"-d", "postgres://localhost/receipts", "-j", "0123456789"})
	require.NoError(t, err)
	assert.Empty(t, conf.CORSAllowedOrigins)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{
			name:    "no dsn",
			args:    []string{"-j", "0123456789"},
			wantErr: "database DSN is not set",
		}, {
			name:    "short secret",
			args:    []string{"-d", "postgres://localhost/receipts", "-j", "short"},
			wantErr: "jwt secret must be at least 10 characters",
		}, {
			name:    "bad origin",
			env:     map[string]string{"CORS_ALLOWED_ORIGINS": "shop.example"},
			args:    []string{"-d", "postgres://localhost/receipts", "-j", "0123456789"},
			wantErr: "cors origin `shop.example`",
		}, {
			name:    "zero burst",
			env:     map[string]string{"PUBLIC_RATE_BURST": "0"},
			args:    []string{"-d", "postgres://localhost/receipts", "-j", "0123456789"},
			wantErr: "public rate burst must be at least 1",
		}, {
			name:    "bad duration",
			env:     map[string]string{"CACHE_TTL": "forever"},
			args:    []string{"-d", "postgres://localhost/receipts", "-j", "0123456789"},
			wantErr: "parse env config",
		}, {
			name:    "unknown flag",
			args:    []string{"-x"},
			wantErr: "parse flags",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
