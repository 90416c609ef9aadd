package gorm

import (
	"context"
	"errors"

	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a new recipe together with its requirement rows
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	rec.ID = model.ID
	for i := range model.Ingredients {
		rec.Ingredients[i].ID = model.Ingredients[i].ID
		rec.Ingredients[i].RecipeID = model.ID
	}

	return nil
}

// Save updates an existing recipe and its requirement rows
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := model.Ingredients
		model.Ingredients = nil

		if err := tx.Save(model).Error; err != nil {
			return err
		}

		for i := range ingredients {
			if err := tx.Save(&ingredients[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a recipe by ID without its requirement rows
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByIDWithIngredients finds a recipe by ID with its requirement rows preloaded
func (r *RecipeRepository) FindByIDWithIngredients(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindAll returns every stored recipe with requirements, newest first
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i, model := range models {
		recipes[i] = ModelToRecipe(&model)
	}

	return recipes, nil
}

// Count returns the total number of stored recipes
func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	result := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

// AddIngredient appends a requirement row to an existing recipe
func (r *RecipeRepository) AddIngredient(ctx context.Context, ing *recipe.RequiredIngredient) error {
	model := RequirementToModel(ing)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	ing.ID = model.ID
	return nil
}
