package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"snackshop/cart"
	"snackshop/models"
	"snackshop/pricing"
	"snackshop/service"
	"snackshop/utils"
)

// CartController handles HTTP requests for the session cart
type CartController struct {
	engine  *cart.Engine
	service service.CatalogServiceInterface
	offline OfflineChecker
	logger  *zap.Logger

	// last catalog snapshot fetched, used to price the cart when a fetch fails
	mu      sync.RWMutex
	catalog []models.Snack
}

// NewCartController creates a new CartController
func NewCartController(engine *cart.Engine, svc service.CatalogServiceInterface, offline OfflineChecker, logger *zap.Logger) *CartController {
	return &CartController{engine: engine, service: svc, offline: offline, logger: logger}
}

// GetCart handles GET /api/cart
// Prices the cart against a fresh catalog snapshot, falling back to the last
// snapshot seen when offline or when the fetch fails.
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	catalog, stale, err := c.catalogSnapshot(r)
	if err != nil {
		if c.offline.OfflineMode() {
			writeMessage(w, http.StatusServiceUnavailable, offlineMessage)
			return
		}
		writeServiceError(w, c.logger, "getCart", err)
		return
	}

	items := c.engine.Items()
	summary := pricing.Summarize(items, catalog)
	writeJSON(w, http.StatusOK, models.CartResponse{
		Items:   items,
		Lines:   pricing.LineDetails(items, catalog),
		Summary: summary,
		Display: models.CartDisplay{
			Subtotal: utils.FormatUSD(summary.Subtotal),
			Tax:      utils.FormatUSD(summary.Tax),
			Total:    utils.FormatUSD(summary.Total),
		},
		Stale: stale,
	})
}

// AddItem handles POST /api/cart/items
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	snackID := strings.TrimSpace(req.SnackID)
	if snackID == "" {
		writeMessage(w, http.StatusBadRequest, "snackId is required")
		return
	}

	c.engine.AddItem(snackID)
	c.logger.Debug("cart item added", zap.String("snackId", snackID))
	c.writeItems(w)
}

// UpdateItem handles PUT /api/cart/items/{id}
// A quantity of zero or less removes the line.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	snackID := chi.URLParam(r, "id")
	c.engine.UpdateQuantity(snackID, req.Quantity)
	c.logger.Debug("cart item updated", zap.String("snackId", snackID), zap.Int("quantity", req.Quantity))
	c.writeItems(w)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	snackID := chi.URLParam(r, "id")
	c.engine.RemoveItem(snackID)
	c.logger.Debug("cart item removed", zap.String("snackId", snackID))
	c.writeItems(w)
}

// ClearCart handles DELETE /api/cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c.engine.ClearCart()
	c.logger.Debug("cart cleared")
	c.writeItems(w)
}

// Checkout handles POST /api/cart/checkout
// Submits the current lines and, once checkout succeeds, takes exactly those
// lines out of the cart. Snacks added during the call are kept.
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	if c.offline.OfflineMode() {
		writeMessage(w, http.StatusServiceUnavailable, offlineMessage)
		return
	}

	items := c.engine.Items()
	receipt, err := c.service.Checkout(r.Context(), items)
	if err != nil {
		writeServiceError(w, c.logger, "checkout", err)
		return
	}

	c.engine.Settle(items)
	writeJSON(w, http.StatusOK, receipt)
}

func (c *CartController) catalogSnapshot(r *http.Request) ([]models.Snack, bool, error) {
	var err error
	if !c.offline.OfflineMode() {
		var snacks []models.Snack
		snacks, err = c.service.ListSnacks(r.Context(), "")
		if err == nil {
			c.mu.Lock()
			c.catalog = snacks
			c.mu.Unlock()
			return snacks, false, nil
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.catalog == nil {
		if err == nil {
			err = errOffline
		}
		return nil, false, err
	}
	return c.catalog, true, nil
}

func (c *CartController) writeItems(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, models.CartItemsResponse{Items: c.engine.Items()})
}
