// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"PAYSTACK_PUBLIC_KEY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "NOTIFY_TIMEOUT", "MIGRATE_ON_START",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SUPABASE_JWT_SECRET", "secret")

		cfg, err := fromEnv()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "farmvora", cfg.DB.DBName)
		assert.Equal(t, 10.0, cfg.RateLimitRPS)
		assert.Equal(t, 20, cfg.RateLimitBurst)
		assert.Equal(t, 5*time.Second, cfg.NotifyTimeout)
		assert.False(t, cfg.MigrateOnStart)
		assert.Empty(t, cfg.PaystackPublicKey)
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SUPABASE_JWT_SECRET", "secret")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("PAYSTACK_PUBLIC_KEY", "pk_test_abc")
		t.Setenv("NOTIFY_TIMEOUT", "2s")
		t.Setenv("MIGRATE_ON_START", "true")

		cfg, err := fromEnv()

		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.ServerPort)
		assert.Equal(t, 6543, cfg.DB.Port)
		assert.Equal(t, "pk_test_abc", cfg.PaystackPublicKey)
		assert.Equal(t, 2*time.Second, cfg.NotifyTimeout)
		assert.True(t, cfg.MigrateOnStart)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("SUPABASE_JWT_SECRET", "")

		_, err := fromEnv()

		assert.ErrorContains(t, err, "SUPABASE_JWT_SECRET")
	})

	t.Run("InvalidPort", func(t *testing.T) {
		t.Setenv("SUPABASE_JWT_SECRET", "secret")
		t.Setenv("DB_PORT", "abc")

		_, err := fromEnv()

		assert.ErrorContains(t, err, "invalid DB_PORT")
	})

	t.Run("InvalidBurst", func(t *testing.T) {
		t.Setenv("SUPABASE_JWT_SECRET", "secret")
		t.Setenv("RATE_LIMIT_BURST", "0")

		_, err := fromEnv()

		assert.Error(t, err)
	})
}
