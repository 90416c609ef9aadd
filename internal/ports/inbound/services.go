// Package inbound defines the interfaces for inbound ports (use cases)
// exposed to the HTTP transport.
package inbound

import (
	"context"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"github.com/google/uuid"
)

// AddIngredientCommand carries the fields of an explicit add action.
type AddIngredientCommand struct {
	Name           string `validate:"required"`
	Quantity       string `validate:"required"`
	Category       string `validate:"required"`
	ExpirationDate *time.Time
}

// UpdateIngredientCommand carries a partial edit; nil fields are left
// untouched on the existing record.
type UpdateIngredientCommand struct {
	Name           *string
	Quantity       *string
	Category       *string
	ExpirationDate *time.Time
	IsLowStock     *bool
}

// InventoryStats is the dashboard summary of the fridge.
type InventoryStats struct {
	TotalItems       int   `json:"totalItems"`
	ExpiringItems    int   `json:"expiringItems"`
	SuggestedRecipes int64 `json:"suggestedRecipes"`
}

// InventoryService exposes the inventory use cases.
type InventoryService interface {
	ListIngredients(ctx context.Context) ([]*inventory.Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*inventory.Ingredient, error)
	AddIngredient(ctx context.Context, cmd AddIngredientCommand) (*inventory.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, cmd UpdateIngredientCommand) (*inventory.Ingredient, error)
	RemoveIngredient(ctx context.Context, id uuid.UUID) error
	ExpiringIngredients(ctx context.Context, days int) ([]*inventory.Ingredient, error)
	Stats(ctx context.Context) (*InventoryStats, error)
}

// CookResult is the outcome of a cook-reconciliation run.
type CookResult struct {
	IngredientsUsed []recipe.UsedIngredient
	Optimization    *outbound.OptimizationAdvice
	// OptimizationFailed is set when the advisory call failed; the cook
	// action itself still succeeded.
	OptimizationFailed bool
}

// ImageResult is the outcome of an image generation request. Generated is
// false when the provider produced nothing, which is a normal outcome.
type ImageResult struct {
	Generated bool
	ImageURL  string
}

// RecipeService exposes the recipe and cooking use cases.
type RecipeService interface {
	// SuggestRecipes runs the suggestion workflow: snapshot the inventory,
	// consult the suggestion engine, persist every candidate, and return
	// the persisted set. An empty inventory yields an empty result
	// without any external call.
	SuggestRecipes(ctx context.Context, servingSize int) ([]*recipe.Recipe, error)

	ListRecipes(ctx context.Context) ([]*recipe.Recipe, error)

	// GetRecipe loads a recipe with its requirement rows and recomputes
	// each row's availability against the live inventory.
	GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// CookRecipe applies the recipe's consumption to the inventory
	// (marking matched items low-stock), appends a history record, and
	// requests advisory leftover optimization.
	CookRecipe(ctx context.Context, id uuid.UUID) (*CookResult, error)

	// GenerateImage synthesizes an image for the recipe and attaches the
	// stored reference to it, overwriting any previous one.
	GenerateImage(ctx context.Context, id uuid.UUID) (*ImageResult, error)

	History(ctx context.Context) ([]*recipe.CookingRecord, error)
}
