package recipe

import (
	"time"

	"github.com/google/uuid"
)

// UsedIngredient records one consumed ingredient of a cooking session.
// Quantities stay free text; no unit arithmetic is performed.
type UsedIngredient struct {
	Name         string `json:"name"`
	QuantityUsed string `json:"quantityUsed"`
}

// CookingRecord is one append-only entry in the cooking history log.
// Records are never updated or deleted by the cook workflow.
type CookingRecord struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	CookedAt time.Time
	Used     []UsedIngredient
}

// NewCookingRecord creates a history entry for a cooked recipe.
func NewCookingRecord(recipeID uuid.UUID, used []UsedIngredient) *CookingRecord {
	return &CookingRecord{
		ID:       uuid.New(),
		RecipeID: recipeID,
		CookedAt: time.Now(),
		Used:     used,
	}
}
