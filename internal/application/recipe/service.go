// Package recipe provides the application layer for recipe suggestion,
// cooking and history. This implements the use cases defined in the
// inbound ports.
package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/fridgechef/v1/internal/ports/outbound"
	apperrors "github.com/fridgechef/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const inventoryCacheKey = "inventory:all"

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo     outbound.RecipeRepository
	ingredientRepo outbound.IngredientRepository
	historyRepo    outbound.HistoryRepository
	cache          outbound.CacheRepository
	chef           outbound.ChefService
	images         outbound.ImageService
	imageStore     outbound.ImageStore
	logger         *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	ingredientRepo outbound.IngredientRepository,
	historyRepo outbound.HistoryRepository,
	cache outbound.CacheRepository,
	chef outbound.ChefService,
	images outbound.ImageService,
	imageStore outbound.ImageStore,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		historyRepo:    historyRepo,
		cache:          cache,
		chef:           chef,
		images:         images,
		imageStore:     imageStore,
		logger:         logger.Named("recipe-service"),
	}
}

// SuggestRecipes asks the chef service for recipes based on the current
// inventory snapshot and persists every suggestion.
func (s *RecipeService) SuggestRecipes(ctx context.Context, servingSize int) ([]*recipe.Recipe, error) {
	snapshot, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	// Nothing to cook with: short-circuit without calling the engine.
	if len(snapshot) == 0 {
		return []*recipe.Recipe{}, nil
	}

	pantry := toPantry(snapshot)

	suggestions, err := s.chef.SuggestRecipes(ctx, pantry, servingSize)
	if err != nil {
		s.logger.Error("Recipe suggestion failed", zap.Error(err))
		return nil, apperrors.NewExternalServiceError("chef", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(suggestions))
	for _, suggestion := range suggestions {
		entity, err := s.buildRecipe(suggestion, servingSize)
		if err != nil {
			s.logger.Warn("Skipping malformed suggestion",
				zap.String("name", suggestion.Name),
				zap.Error(err),
			)
			continue
		}

		if err := s.recipeRepo.Create(ctx, entity); err != nil {
			return nil, apperrors.NewDatabaseError("create recipe", err)
		}

		recipes = append(recipes, entity)
	}

	s.logger.Info("Recipes suggested",
		zap.Int("count", len(recipes)),
		zap.Int("serving_size", servingSize),
	)

	return recipes, nil
}

// buildRecipe converts a raw suggestion into a domain recipe. The engine's
// availability flags are stored as-is; they get refreshed against the live
// inventory on every detail fetch. The requested serving size is taken over
// whatever the engine echoed.
func (s *RecipeService) buildRecipe(suggestion outbound.RecipeSuggestion, servingSize int) (*recipe.Recipe, error) {
	difficulty := recipe.Difficulty(suggestion.Difficulty)
	if !difficulty.Valid() {
		difficulty = recipe.DifficultyMedium
	}

	if servingSize <= 0 {
		servingSize = 2
	}

	entity, err := recipe.NewRecipe(suggestion.Name, suggestion.Description, servingSize, difficulty, suggestion.Instructions)
	if err != nil {
		return nil, err
	}

	if suggestion.CookingTime > 0 {
		entity.SetCookingTime(suggestion.CookingTime)
	}

	pct := suggestion.MatchPercentage
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if err := entity.SetMatchPercentage(pct); err != nil {
		return nil, err
	}

	for _, ing := range suggestion.RequiredIngredients {
		if err := entity.AddIngredient(ing.Name, ing.Quantity, ing.Available); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

// ListRecipes returns all stored recipes with the availability flags from
// the time they were suggested or last refreshed.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	recipes, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list recipes", err)
	}

	return recipes, nil
}

// GetRecipe returns a single recipe with availability recomputed against
// the live inventory, and persists the refreshed flags.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByIDWithIngredients(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewRecipeNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find recipe", err)
	}

	snapshot, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	entity.RecomputeAvailability(snapshot)

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("update recipe availability", err)
	}

	return entity, nil
}

// CookRecipe marks every available required ingredient as low stock,
// records a history entry and asks the chef service for leftover advice.
// Optimization is advisory: if it fails the cook still succeeds and the
// result carries a flag instead of an error.
func (s *RecipeService) CookRecipe(ctx context.Context, id uuid.UUID) (*inbound.CookResult, error) {
	entity, err := s.recipeRepo.FindByIDWithIngredients(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewRecipeNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find recipe", err)
	}

	snapshot, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", err)
	}

	var used []recipe.UsedIngredient
	for _, req := range entity.Ingredients {
		match := inventory.Find(req.Name, snapshot)
		if match == nil {
			continue
		}

		match.MarkLowStock()
		if err := s.ingredientRepo.Save(ctx, match); err != nil {
			return nil, apperrors.NewDatabaseError("mark ingredient low stock", err)
		}

		used = append(used, recipe.UsedIngredient{
			Name:         req.Name,
			QuantityUsed: req.Quantity,
		})
	}

	record := recipe.NewCookingRecord(entity.ID, used)
	if err := s.historyRepo.Append(ctx, record); err != nil {
		return nil, apperrors.NewDatabaseError("append cooking history", err)
	}

	if err := s.cache.Delete(ctx, inventoryCacheKey); err != nil {
		s.logger.Debug("Failed to invalidate inventory cache", zap.Error(err))
	}

	result := &inbound.CookResult{
		IngredientsUsed: used,
	}

	remaining, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to load inventory for optimization", zap.Error(err))
		result.OptimizationFailed = true
		return result, nil
	}

	advice, err := s.chef.OptimizeLeftovers(ctx, used, toPantry(withoutUsed(remaining, used)))
	if err != nil {
		s.logger.Warn("Leftover optimization failed",
			zap.String("recipe_id", entity.ID.String()),
			zap.Error(err),
		)
		result.OptimizationFailed = true
		return result, nil
	}

	result.Optimization = advice

	s.logger.Info("Recipe cooked",
		zap.String("recipe_id", entity.ID.String()),
		zap.Int("ingredients_used", len(used)),
	)

	return result, nil
}

// GenerateImage renders and stores a dish photo for a recipe. When no
// image provider is configured the call succeeds with Generated false.
func (s *RecipeService) GenerateImage(ctx context.Context, id uuid.UUID) (*inbound.ImageResult, error) {
	entity, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewRecipeNotFoundError(id.String())
		}
		return nil, apperrors.NewDatabaseError("find recipe", err)
	}

	data, err := s.images.GenerateImage(ctx, entity.Name, entity.Description)
	if err != nil {
		s.logger.Error("Image generation failed",
			zap.String("recipe_id", entity.ID.String()),
			zap.Error(err),
		)
		return nil, apperrors.NewExternalServiceError("image generation", err)
	}

	if len(data) == 0 {
		return &inbound.ImageResult{Generated: false}, nil
	}

	filename := uuid.New().String() + ".png"
	url, err := s.imageStore.Save(ctx, filename, data)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to store generated image")
	}

	entity.ImageURL = url
	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("update recipe image", err)
	}

	return &inbound.ImageResult{Generated: true, ImageURL: url}, nil
}

// History returns all cooking records, most recent first
func (s *RecipeService) History(ctx context.Context) ([]*recipe.CookingRecord, error) {
	records, err := s.historyRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list cooking history", err)
	}

	return records, nil
}

func toPantry(snapshot []*inventory.Ingredient) []outbound.PantryItem {
	pantry := make([]outbound.PantryItem, len(snapshot))
	for i, item := range snapshot {
		pantry[i] = outbound.PantryItem{Name: item.Name, Quantity: item.Quantity}
	}
	return pantry
}

// withoutUsed drops the just-consumed ingredients from the snapshot so the
// optimization call only sees what is actually left over.
func withoutUsed(snapshot []*inventory.Ingredient, used []recipe.UsedIngredient) []*inventory.Ingredient {
	consumed := make(map[string]struct{}, len(used))
	for _, u := range used {
		consumed[strings.ToLower(u.Name)] = struct{}{}
	}

	remaining := make([]*inventory.Ingredient, 0, len(snapshot))
	for _, item := range snapshot {
		if _, ok := consumed[strings.ToLower(item.Name)]; ok {
			continue
		}
		remaining = append(remaining, item)
	}
	return remaining
}
