// Package inventory provides the application layer for fridge inventory
// management. This implements the use cases defined in the inbound ports.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/fridgechef/v1/internal/ports/outbound"
	apperrors "github.com/fridgechef/v1/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	inventoryCacheKey = "inventory:all"

	// statsExpiryWindow is the lookahead used for the dashboard
	// expiring-items count.
	statsExpiryWindow = 3 * 24 * time.Hour
)

// InventoryService implements the inventory use cases
type InventoryService struct {
	ingredientRepo outbound.IngredientRepository
	recipeRepo     outbound.RecipeRepository
	cache          outbound.CacheRepository
	cacheTTL       time.Duration
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	ingredientRepo outbound.IngredientRepository,
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.InventoryService {
	return &InventoryService{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		validate:       validator.New(),
		logger:         logger.Named("inventory-service"),
	}
}

// ListIngredients returns the full inventory, newest additions first.
// Results are cached briefly since the list backs most dashboard views.
func (s *InventoryService) ListIngredients(ctx context.Context) ([]*inventory.Ingredient, error) {
	if cached, err := s.cache.Get(ctx, inventoryCacheKey); err == nil {
		var ingredients []*inventory.Ingredient
		if err := json.Unmarshal(cached, &ingredients); err == nil {
			return ingredients, nil
		}
	}

	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	if data, err := json.Marshal(ingredients); err == nil {
		if err := s.cache.Set(ctx, inventoryCacheKey, data, s.cacheTTL); err != nil {
			s.logger.Debug("Failed to cache inventory", zap.Error(err))
		}
	}

	return ingredients, nil
}

// GetIngredient returns a single ingredient by ID
func (s *InventoryService) GetIngredient(ctx context.Context, id uuid.UUID) (*inventory.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewIngredientNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find ingredient", err)
	}

	return ingredient, nil
}

// AddIngredient validates and stores a new inventory item
func (s *InventoryService) AddIngredient(ctx context.Context, cmd inbound.AddIngredientCommand) (*inventory.Ingredient, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	ingredient, err := inventory.NewIngredient(cmd.Name, cmd.Quantity, inventory.Category(cmd.Category), cmd.ExpirationDate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, apperrors.NewDatabaseError("create ingredient", err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Ingredient added",
		zap.String("ingredient_id", ingredient.ID.String()),
		zap.String("name", ingredient.Name),
	)

	return ingredient, nil
}

// UpdateIngredient applies a partial update to an existing ingredient
func (s *InventoryService) UpdateIngredient(ctx context.Context, id uuid.UUID, cmd inbound.UpdateIngredientCommand) (*inventory.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewIngredientNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find ingredient", err)
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperrors.NewValidationError("ingredient name cannot be empty")
		}
		ingredient.Name = *cmd.Name
	}
	if cmd.Quantity != nil {
		if *cmd.Quantity == "" {
			return nil, apperrors.NewValidationError("ingredient quantity cannot be empty")
		}
		ingredient.Quantity = *cmd.Quantity
	}
	if cmd.Category != nil {
		ingredient.Category = inventory.Category(*cmd.Category)
	}
	if cmd.ExpirationDate != nil {
		ingredient.ExpirationDate = cmd.ExpirationDate
	}
	if cmd.IsLowStock != nil {
		ingredient.IsLowStock = *cmd.IsLowStock
	}

	if err := s.ingredientRepo.Save(ctx, ingredient); err != nil {
		return nil, apperrors.NewDatabaseError("update ingredient", err)
	}

	s.invalidateCache(ctx)

	return ingredient, nil
}

// RemoveIngredient deletes an ingredient. Removing an unknown ID is a no-op
// so repeated deletes stay idempotent.
func (s *InventoryService) RemoveIngredient(ctx context.Context, id uuid.UUID) error {
	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		return apperrors.NewDatabaseError("delete ingredient", err)
	}

	s.invalidateCache(ctx)

	return nil
}

// ExpiringIngredients returns items expiring within the given number of
// days, soonest first. Already-expired items are included.
func (s *InventoryService) ExpiringIngredients(ctx context.Context, days int) ([]*inventory.Ingredient, error) {
	cutoff := time.Now().Add(time.Duration(days) * 24 * time.Hour)

	ingredients, err := s.ingredientRepo.FindExpiringBefore(ctx, cutoff)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list expiring ingredients", err)
	}

	return ingredients, nil
}

// Stats returns the dashboard counters
func (s *InventoryService) Stats(ctx context.Context) (*inbound.InventoryStats, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	expiring, err := s.ingredientRepo.FindExpiringBefore(ctx, time.Now().Add(statsExpiryWindow))
	if err != nil {
		return nil, apperrors.NewDatabaseError("list expiring ingredients", err)
	}

	recipeCount, err := s.recipeRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("count recipes", err)
	}

	return &inbound.InventoryStats{
		TotalItems:       len(ingredients),
		ExpiringItems:    len(expiring),
		SuggestedRecipes: recipeCount,
	}, nil
}

func (s *InventoryService) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, inventoryCacheKey); err != nil {
		s.logger.Debug("Failed to invalidate inventory cache", zap.Error(err))
	}
}
