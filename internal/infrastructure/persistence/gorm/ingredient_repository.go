package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository implements the ingredient repository interface using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create persists a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, in *inventory.Ingredient) error {
	model := IngredientToModel(in)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	in.ID = model.ID
	return nil
}

// Save updates an existing ingredient
func (r *IngredientRepository) Save(ctx context.Context, in *inventory.Ingredient) error {
	model := IngredientToModel(in)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes an ingredient by ID. Deleting an absent ID is not an error.
func (r *IngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&IngredientModel{}, "id = ?", id)
	return result.Error
}

// FindByID finds an ingredient by ID
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToIngredient(&model), nil
}

// FindAll returns every ingredient, newest additions first
func (r *IngredientRepository) FindAll(ctx context.Context) ([]*inventory.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*inventory.Ingredient, len(models))
	for i, model := range models {
		ingredients[i] = ModelToIngredient(&model)
	}

	return ingredients, nil
}

// FindExpiringBefore returns ingredients whose expiration date falls before
// the cutoff, soonest-expiring first. Ingredients without an expiration date
// are excluded. Already-expired items are included on purpose so the caller
// sees everything that needs attention.
func (r *IngredientRepository) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", cutoff).
		Order("expiration_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*inventory.Ingredient, len(models))
	for i, model := range models {
		ingredients[i] = ModelToIngredient(&model)
	}

	return ingredients, nil
}
