package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackshop/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "OFFLINE_MODE", "SIMULATE_LATENCY", "SIMULATE_ERRORS",
		"CATALOG_SEED_PATH", "DATABASE_URL", "DB_HOST", "DB_USER", "DB_NAME",
		"CART_SESSION_ID", "RUN_MIGRATIONS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:          "8080",
		CartSessionID: "local",
		RunMigrations: true,
	}, cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("OFFLINE_MODE", "true")
	t.Setenv("SIMULATE_LATENCY", "1")
	t.Setenv("SIMULATE_ERRORS", "false")
	t.Setenv("CATALOG_SEED_PATH", "/data/snacks.json")
	t.Setenv("DATABASE_URL", "postgres://localhost/snackshop")
	t.Setenv("CART_SESSION_ID", "kiosk-2")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:            "9090",
		Settings:        models.Settings{OfflineMode: true, SimulateLatency: true},
		CatalogSeedPath: "/data/snacks.json",
		DatabaseURL:     "postgres://localhost/snackshop",
		CartSessionID:   "kiosk-2",
		RunMigrations:   false,
	}, cfg)
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMULATE_ERRORS", "sometimes")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIMULATE_ERRORS")
}
