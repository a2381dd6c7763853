package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"

type Config struct {
	HTTPPort         string
	DatabaseDSN      string
	ViewsDir         string
	DefaultLocations []string // seeded at startup, existing rows untouched
}

func Load() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8089"),
		DatabaseDSN:      getEnv("DATABASE_DSN", defaultDSN),
		ViewsDir:         getEnv("VIEWS_DIR", "./views"),
		DefaultLocations: splitList(getEnv("DEFAULT_LOCATIONS", "Chennai,Coimbatore,Madurai,Trichy,Salem,Bangalore")),
	}

	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN not set, using the default local Postgres connection.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
