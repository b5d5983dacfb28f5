package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"snackshop/db"
	"snackshop/models"
)

// Config holds the runtime configuration read from the environment
type Config struct {
	Port            string
	Settings        models.Settings
	CatalogSeedPath string // optional external seed, embedded seed when empty
	DatabaseURL     string // optional, cart persistence is off when empty
	CartSessionID   string
	RunMigrations   bool
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		CatalogSeedPath: os.Getenv("CATALOG_SEED_PATH"),
		DatabaseURL:     db.ConnStringFromEnv(),
		CartSessionID:   getEnv("CART_SESSION_ID", "local"),
	}

	var err error
	if cfg.Settings.OfflineMode, err = getBool("OFFLINE_MODE", false); err != nil {
		return Config{}, err
	}
	if cfg.Settings.SimulateLatency, err = getBool("SIMULATE_LATENCY", false); err != nil {
		return Config{}, err
	}
	if cfg.Settings.SimulateErrors, err = getBool("SIMULATE_ERRORS", false); err != nil {
		return Config{}, err
	}
	if cfg.RunMigrations, err = getBool("RUN_MIGRATIONS", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return b, nil
}
