package controller

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"snackshop/schema"
	"snackshop/service"
)

// maxCheckoutBody bounds the checkout request body
const maxCheckoutBody = 1 << 20

// CheckoutController handles checkout requests carrying their own line items
type CheckoutController struct {
	service service.CatalogServiceInterface
	offline OfflineChecker
	logger  *zap.Logger
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(svc service.CatalogServiceInterface, offline OfflineChecker, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{service: svc, offline: offline, logger: logger}
}

// Checkout handles POST /api/checkout
// The body is a JSON array of {snackId, quantity} lines.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	if c.offline.OfflineMode() {
		writeMessage(w, http.StatusServiceUnavailable, offlineMessage)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCheckoutBody))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	items, err := schema.ParseCheckoutRequest(body)
	if err != nil {
		writeServiceError(w, c.logger, "checkout", err)
		return
	}

	receipt, err := c.service.Checkout(r.Context(), items)
	if err != nil {
		writeServiceError(w, c.logger, "checkout", err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
