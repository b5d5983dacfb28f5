package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackshop/schema"
)

func TestNewCatalogRepository_EmbeddedSeed(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	snacks := repo.All()
	require.GreaterOrEqual(t, len(snacks), 2)
	assert.Equal(t, "1", snacks[0].ID)
	assert.Equal(t, "Cosmic Crunch Tortilla Chips", snacks[0].Name)
	assert.Equal(t, 3.49, snacks[0].Price)
	assert.Equal(t, "2", snacks[1].ID)
	assert.Equal(t, 2.99, snacks[1].Price)
	assert.Equal(t, 210, snacks[1].NutritionFacts.Calories)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	snack, ok := repo.FindByID("2")
	require.True(t, ok)
	assert.Equal(t, "Chewy Chocolate Nova Cookies", snack.Name)

	_, ok = repo.FindByID("does-not-exist")
	assert.False(t, ok)
}

func TestCatalogRepository_AllIsACopy(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	snacks := repo.All()
	snacks[0].Price = 100

	assert.Equal(t, 3.49, repo.All()[0].Price)
}

func TestNewCatalogRepositoryFromJSON_Invalid(t *testing.T) {
	data := []byte(`[{"id":"1","name":"Bad","price":-1,"description":"","category":"","imageUrl":"https://example.com/a.png","inStock":true,"nutritionFacts":{"calories":1,"fat":0,"carbs":0,"protein":0}}]`)

	_, err := NewCatalogRepositoryFromJSON(data)

	require.Error(t, err)
	assert.True(t, schema.IsValidationError(err))
}

func TestNewCatalogRepositoryFromJSON_DuplicateID(t *testing.T) {
	snack := `{"id":"1","name":"A","price":1,"description":"","category":"","imageUrl":"https://example.com/a.png","inStock":true,"nutritionFacts":{"calories":1,"fat":0,"carbs":0,"protein":0}}`

	_, err := NewCatalogRepositoryFromJSON([]byte("[" + snack + "," + snack + "]"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate snack id")
}

func TestNewCatalogRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snacks.json")
	require.NoError(t, os.WriteFile(path, seedSnacks, 0o600))

	repo, err := NewCatalogRepositoryFromFile(path)
	require.NoError(t, err)
	assert.Len(t, repo.All(), 6)

	_, err = NewCatalogRepositoryFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
