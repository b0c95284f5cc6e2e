package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "APP_ENV", "TZ", "DB_PATH", "LOG_LEVEL",
		"DEFAULT_USER_ID", "REQUIRE_USER", "SEED_SAMPLE_DATA", "WORK_INTERVALS_FILE",
		"RATE_LIMIT_RPS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.True(t, cfg.Development())
	assert.Equal(t, "Asia/Seoul", cfg.Timezone)
	assert.Equal(t, "farmmate.db", cfg.DBPath)
	assert.Equal(t, "user-1", cfg.DefaultUserID)
	assert.False(t, cfg.RequireUser)
	assert.True(t, cfg.SeedSampleData)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REQUIRE_USER", "true")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("REMINDER_CRON", "")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.False(t, cfg.Development())
	assert.True(t, cfg.RequireUser)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.ReminderCron)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("REQUIRE_USER", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("TZ", "Nowhere/Land")

	cfg := Load()
	assert.False(t, cfg.RequireUser)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.UTC, cfg.Location())
}
