package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"snackshop/settings"
)

// SettingsController handles HTTP requests for the session flags
type SettingsController struct {
	store  *settings.Store
	logger *zap.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(store *settings.Store, logger *zap.Logger) *SettingsController {
	return &SettingsController{store: store, logger: logger}
}

// GetSettings handles GET /api/settings
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.store.Snapshot())
}

// Toggle handles POST /api/settings/{flag}/toggle
// flag is one of offline-mode, simulate-latency or simulate-errors.
func (c *SettingsController) Toggle(w http.ResponseWriter, r *http.Request) {
	flag := chi.URLParam(r, "flag")

	var value bool
	switch flag {
	case "offline-mode":
		value = c.store.ToggleOfflineMode()
	case "simulate-latency":
		value = c.store.ToggleSimulateLatency()
	case "simulate-errors":
		value = c.store.ToggleSimulateErrors()
	default:
		writeMessage(w, http.StatusNotFound, "unknown setting: "+flag)
		return
	}

	c.logger.Info("setting toggled", zap.String("flag", flag), zap.Bool("value", value))
	writeJSON(w, http.StatusOK, c.store.Snapshot())
}
