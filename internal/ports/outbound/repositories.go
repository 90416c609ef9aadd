// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters): persistence, caching, and the external AI collaborators.
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/google/uuid"
)

// IngredientRepository defines the interface for inventory persistence.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *inventory.Ingredient) error
	Save(ctx context.Context, ingredient *inventory.Ingredient) error
	// Delete removes an ingredient. Deleting an absent id is a no-op,
	// mirroring single-statement DELETE semantics.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Ingredient, error)
	// FindAll returns all ingredients, newest-created first.
	FindAll(ctx context.Context) ([]*inventory.Ingredient, error)
	// FindExpiringBefore returns ingredients whose expiration date is
	// strictly before the cutoff. Ingredients without an expiration date
	// are never returned.
	FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.Ingredient, error)
}

// RecipeRepository defines the interface for recipe persistence.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	// Save persists mutable recipe fields; in practice only the image
	// reference changes after creation.
	Save(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	// FindByIDWithIngredients loads a recipe together with its stored
	// requirement rows. Availability flags are returned as stored; live
	// recomputation is the workflow's responsibility.
	FindByIDWithIngredients(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	// FindAll returns all recipes, newest first, each with its ingredient rows.
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	Count(ctx context.Context) (int64, error)
	// AddIngredient appends one requirement row for a recipe.
	AddIngredient(ctx context.Context, req *recipe.RequiredIngredient) error
}

// HistoryRepository defines the interface for the append-only cooking log.
type HistoryRepository interface {
	Append(ctx context.Context, record *recipe.CookingRecord) error
	// FindAll returns history entries, most recently cooked first.
	FindAll(ctx context.Context) ([]*recipe.CookingRecord, error)
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ErrNotFound is returned by repositories when a referenced id is absent.
// Services translate it into the API-facing not-found error.
var ErrNotFound = errors.New("record not found")
