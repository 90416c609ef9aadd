// Package inventory contains the core domain logic for fridge inventory
// management. Quantities are deliberately free-text and never parsed into
// numeric units; depletion is tracked with a low-stock flag instead.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies an ingredient. The set is an open enumeration:
// unknown values are preserved, CategoryOther is the conventional fallback.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryMeat       Category = "meat"
	CategoryDairy      Category = "dairy"
	CategoryPantry     Category = "pantry"
	CategoryOther      Category = "other"
)

// Ingredient represents one kind of food item currently in the fridge.
type Ingredient struct {
	ID             uuid.UUID
	Name           string
	Quantity       string
	Category       Category
	PurchaseDate   time.Time
	ExpirationDate *time.Time
	IsLowStock     bool
	CreatedAt      time.Time
}

// NewIngredient creates a new Ingredient with validation.
// Name, quantity and category must be non-empty.
func NewIngredient(name, quantity string, category Category, expirationDate *time.Time) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	quantity = strings.TrimSpace(quantity)

	if name == "" {
		return nil, ErrEmptyName
	}
	if quantity == "" {
		return nil, ErrEmptyQuantity
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}

	now := time.Now()
	return &Ingredient{
		ID:             uuid.New(),
		Name:           name,
		Quantity:       quantity,
		Category:       category,
		PurchaseDate:   now,
		ExpirationDate: expirationDate,
		CreatedAt:      now,
	}, nil
}

// MarkLowStock flags the ingredient as running low. Cooking reconciliation
// uses this instead of deleting or decrementing items; exact depletion is
// left to the user.
func (i *Ingredient) MarkLowStock() {
	i.IsLowStock = true
}

// ExpiresBefore reports whether the ingredient expires strictly before the
// given instant. Ingredients without an expiration date never expire.
func (i *Ingredient) ExpiresBefore(t time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return i.ExpirationDate.Before(t)
}
