package repository

import (
	_ "embed"
	"fmt"
	"os"

	"snackshop/models"
	"snackshop/schema"
)

//go:embed seed/snacks.json
var seedSnacks []byte

// CatalogRepository serves the immutable snack catalog loaded at startup
type CatalogRepository struct {
	snacks []models.Snack
	byID   map[string]int
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// NewCatalogRepository creates a CatalogRepository from the embedded seed
func NewCatalogRepository() (*CatalogRepository, error) {
	return NewCatalogRepositoryFromJSON(seedSnacks)
}

// NewCatalogRepositoryFromFile creates a CatalogRepository from a JSON dataset on disk
func NewCatalogRepositoryFromFile(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}
	return NewCatalogRepositoryFromJSON(data)
}

// NewCatalogRepositoryFromJSON creates a CatalogRepository from a JSON array of snacks.
// The dataset is validated as a whole; one bad entry rejects it.
func NewCatalogRepositoryFromJSON(data []byte) (*CatalogRepository, error) {
	snacks, err := schema.ParseSnacks(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog seed: %w", err)
	}

	byID := make(map[string]int, len(snacks))
	for i, snack := range snacks {
		if _, dup := byID[snack.ID]; dup {
			return nil, fmt.Errorf("failed to load catalog seed: duplicate snack id %q", snack.ID)
		}
		byID[snack.ID] = i
	}

	return &CatalogRepository{snacks: snacks, byID: byID}, nil
}

// All returns every snack in seed order
func (r *CatalogRepository) All() []models.Snack {
	out := make([]models.Snack, len(r.snacks))
	copy(out, r.snacks)
	return out
}

// FindByID returns the snack with the exact id
func (r *CatalogRepository) FindByID(id string) (models.Snack, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Snack{}, false
	}
	return r.snacks[i], true
}
