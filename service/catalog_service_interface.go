package service

import (
	"context"

	"snackshop/models"
)

// CatalogServiceInterface defines the contract for the simulated catalog API
type CatalogServiceInterface interface {
	// ListSnacks returns snacks whose name or description contains search,
	// case-insensitively, in catalog order. Only an empty search returns every
	// snack; whitespace is part of the term.
	ListSnacks(ctx context.Context, search string) ([]models.Snack, error)
	// GetSnackByID returns nil with a nil error when no snack has the id.
	GetSnackByID(ctx context.Context, id string) (*models.Snack, error)
	Checkout(ctx context.Context, items []models.CartItem) (*models.CheckoutReceipt, error)
}
