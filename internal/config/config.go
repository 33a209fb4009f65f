package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8000"
	defaultSessionTTL  = 2 * time.Hour
	defaultCORSOrigins = "http://localhost:3000,http://localhost:5173"
)

type Config struct {
	Env           string
	Port          string
	SessionSecret string
	SessionTTL    time.Duration
	CORSOrigins   []string
	MenuFile      string
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads .env (outside production) and then the process environment.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Env:           os.Getenv("APP_ENV"),
		Port:          getenv("PORT", defaultPort),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		MenuFile:      os.Getenv("MENU_FILE"),
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("missing env var: SESSION_SECRET")
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	cfg.SessionTTL = defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
		}
		cfg.SessionTTL = ttl
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS", defaultCORSOrigins), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
