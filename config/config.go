package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Host              string
	Port              string
	Env               string
	Timezone          string
	DBPath            string
	LogLevel          string
	DefaultUserID     string
	RequireUser       bool
	SeedSampleData    bool
	WorkIntervalsFile string
	ReminderCron      string
	RateLimitRPS      float64
	ShutdownTimeout   time.Duration

	// EnvFileErr is set when no .env could be read; callers log it once
	// the logger exists.
	EnvFileErr error
}

func Load() AppConfig {
	envErr := godotenv.Load()

	cfg := AppConfig{
		Host:              get("HOST", "0.0.0.0"),
		Port:              get("PORT", "5000"),
		Env:               get("APP_ENV", "development"),
		Timezone:          get("TZ", "Asia/Seoul"),
		DBPath:            get("DB_PATH", "farmmate.db"),
		LogLevel:          get("LOG_LEVEL", "info"),
		DefaultUserID:     get("DEFAULT_USER_ID", "user-1"),
		RequireUser:       getBool("REQUIRE_USER", false),
		SeedSampleData:    getBool("SEED_SAMPLE_DATA", true),
		WorkIntervalsFile: get("WORK_INTERVALS_FILE", ""),
		ReminderCron:      lookup("REMINDER_CRON", "0 6 * * *"),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 0),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		EnvFileErr:        envErr,
	}
	return cfg
}

func (c AppConfig) Addr() string { return c.Host + ":" + c.Port }

func (c AppConfig) Development() bool { return strings.EqualFold(c.Env, "development") }

// Location resolves Timezone, falling back to UTC for unknown names.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// lookup differs from get in that an explicitly empty value wins.
func lookup(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getBool(k string, def bool) bool {
	b, err := strconv.ParseBool(get(k, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return b
}

func getFloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(get(k, ""), 64)
	if err != nil {
		return def
	}
	return f
}

func getDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(get(k, ""))
	if err != nil {
		return def
	}
	return d
}
