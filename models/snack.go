package models

// NutritionFacts holds the per-serving nutrition values of a snack
type NutritionFacts struct {
	Calories int     `json:"calories"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
}

// Snack represents a sellable catalog entry.
// Snacks come from the catalog seed and are never mutated at runtime.
type Snack struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Price          float64        `json:"price"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	ImageURL       string         `json:"imageUrl"`
	InStock        bool           `json:"inStock"`
	NutritionFacts NutritionFacts `json:"nutritionFacts"`
}
