package repository

import (
	"context"

	"snackshop/models"
)

// CatalogRepositoryInterface defines the contract for catalog seed access
type CatalogRepositoryInterface interface {
	All() []models.Snack
	FindByID(id string) (models.Snack, bool)
}

// CartSnapshotRepositoryInterface defines the contract for persisted cart snapshots
type CartSnapshotRepositoryInterface interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}
