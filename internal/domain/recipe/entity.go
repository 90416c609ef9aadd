// Package recipe contains the core domain logic for suggested recipes,
// their ingredient requirements, and the cooking history log.
package recipe

import (
	"strings"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/google/uuid"
)

// Difficulty is the coarse skill rating the suggestion engine assigns.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether the difficulty is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe represents a suggested or saved dish. Recipes are structurally
// immutable after creation except for the image reference, which may be
// attached later by a separate generation request.
type Recipe struct {
	ID              uuid.UUID
	Name            string
	Description     string
	ServingSize     int
	CookingTime     *int // minutes, nil when the engine did not report one
	Difficulty      Difficulty
	Instructions    []string
	ImageURL        string
	MatchPercentage *int // 0-100, only meaningful for suggested recipes
	CreatedAt       time.Time

	// Ingredients carries the requirement rows when loaded with them.
	Ingredients []RequiredIngredient
}

// RequiredIngredient is one ingredient requirement of a recipe. The name is
// free text matched case-insensitively against the inventory; Available is a
// snapshot that gets recomputed against live inventory on every detail read.
type RequiredIngredient struct {
	ID        uuid.UUID
	RecipeID  uuid.UUID
	Name      string
	Quantity  string
	Available bool
}

// NewRecipe creates a new Recipe with validation.
func NewRecipe(name, description string, servingSize int, difficulty Difficulty, instructions []string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if servingSize <= 0 {
		return nil, ErrInvalidServingSize
	}
	if !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}

	return &Recipe{
		ID:           uuid.New(),
		Name:         name,
		Description:  strings.TrimSpace(description),
		ServingSize:  servingSize,
		Difficulty:   difficulty,
		Instructions: instructions,
		CreatedAt:    time.Now(),
	}, nil
}

// SetCookingTime records the engine-reported cooking time in minutes.
func (r *Recipe) SetCookingTime(minutes int) {
	if minutes > 0 {
		r.CookingTime = &minutes
	}
}

// SetMatchPercentage records the engine-computed match score.
func (r *Recipe) SetMatchPercentage(pct int) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidMatchPercentage
	}
	r.MatchPercentage = &pct
	return nil
}

// AddIngredient appends one ingredient requirement row.
func (r *Recipe) AddIngredient(name, quantity string, available bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyIngredientName
	}
	r.Ingredients = append(r.Ingredients, RequiredIngredient{
		ID:        uuid.New(),
		RecipeID:  r.ID,
		Name:      name,
		Quantity:  quantity,
		Available: available,
	})
	return nil
}

// RecomputeAvailability discards the stored availability snapshot and
// re-derives it from the current inventory. Inventory changes continuously
// after a recipe was suggested, so the stored flags are never authoritative.
func (r *Recipe) RecomputeAvailability(snapshot []*inventory.Ingredient) {
	for i := range r.Ingredients {
		r.Ingredients[i].Available = inventory.IsAvailable(r.Ingredients[i].Name, snapshot)
	}
}
