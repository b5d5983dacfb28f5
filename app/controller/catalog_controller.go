package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"snackshop/service"
)

// CatalogController handles HTTP requests for the snack catalog
type CatalogController struct {
	service service.CatalogServiceInterface
	offline OfflineChecker
	logger  *zap.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(svc service.CatalogServiceInterface, offline OfflineChecker, logger *zap.Logger) *CatalogController {
	return &CatalogController{service: svc, offline: offline, logger: logger}
}

// ListSnacks handles GET /api/snacks?search=
func (c *CatalogController) ListSnacks(w http.ResponseWriter, r *http.Request) {
	if c.offline.OfflineMode() {
		writeMessage(w, http.StatusServiceUnavailable, offlineMessage)
		return
	}

	search := r.URL.Query().Get("search")
	snacks, err := c.service.ListSnacks(r.Context(), search)
	if err != nil {
		writeServiceError(w, c.logger, "listSnacks", err)
		return
	}

	writeJSON(w, http.StatusOK, snacks)
}

// GetSnack handles GET /api/snacks/{id}
func (c *CatalogController) GetSnack(w http.ResponseWriter, r *http.Request) {
	if c.offline.OfflineMode() {
		writeMessage(w, http.StatusServiceUnavailable, offlineMessage)
		return
	}

	id := chi.URLParam(r, "id")
	snack, err := c.service.GetSnackByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, c.logger, "getSnackById", err)
		return
	}
	if snack == nil {
		writeMessage(w, http.StatusNotFound, "snack not found")
		return
	}

	writeJSON(w, http.StatusOK, snack)
}
