package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/fridgechef/v1/internal/ports/outbound"
	apperrors "github.com/fridgechef/v1/pkg/errors"
)

// Mock repositories and collaborators

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDWithIngredients(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) AddIngredient(ctx context.Context, req *recipe.RequiredIngredient) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, in *inventory.Ingredient) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockIngredientRepository) Save(ctx context.Context, in *inventory.Ingredient) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindAll(ctx context.Context) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindExpiringBefore(ctx context.Context, cutoff time.Time) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, record *recipe.CookingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) FindAll(ctx context.Context) ([]*recipe.CookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.CookingRecord), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockChefService struct {
	mock.Mock
}

func (m *MockChefService) SuggestRecipes(ctx context.Context, pantry []outbound.PantryItem, servingSize int) ([]outbound.RecipeSuggestion, error) {
	args := m.Called(ctx, pantry, servingSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.RecipeSuggestion), args.Error(1)
}

func (m *MockChefService) OptimizeLeftovers(ctx context.Context, used []recipe.UsedIngredient, remaining []outbound.PantryItem) (*outbound.OptimizationAdvice, error) {
	args := m.Called(ctx, used, remaining)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.OptimizationAdvice), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) GenerateImage(ctx context.Context, name, description string) ([]byte, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

type testMocks struct {
	recipeRepo     *MockRecipeRepository
	ingredientRepo *MockIngredientRepository
	historyRepo    *MockHistoryRepository
	cache          *MockCacheRepository
	chef           *MockChefService
	images         *MockImageService
	imageStore     *MockImageStore
}

func createTestService(t *testing.T) (inbound.RecipeService, *testMocks) {
	m := &testMocks{
		recipeRepo:     new(MockRecipeRepository),
		ingredientRepo: new(MockIngredientRepository),
		historyRepo:    new(MockHistoryRepository),
		cache:          new(MockCacheRepository),
		chef:           new(MockChefService),
		images:         new(MockImageService),
		imageStore:     new(MockImageStore),
	}

	svc := NewRecipeService(
		m.recipeRepo,
		m.ingredientRepo,
		m.historyRepo,
		m.cache,
		m.chef,
		m.images,
		m.imageStore,
		zaptest.NewLogger(t),
	)
	return svc, m
}

func testSnapshot(t *testing.T, names ...string) []*inventory.Ingredient {
	t.Helper()
	snapshot := make([]*inventory.Ingredient, 0, len(names))
	for _, name := range names {
		in, err := inventory.NewIngredient(name, "some", inventory.CategoryPantry, nil)
		require.NoError(t, err)
		snapshot = append(snapshot, in)
	}
	return snapshot
}

func testRecipe(t *testing.T, name string) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(name, "A dish", 2, recipe.DifficultyEasy, []string{"Cook"})
	require.NoError(t, err)
	return r
}

func TestSuggestRecipes(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	snapshot := testSnapshot(t, "Pasta", "Tomatoes")

	suggestion := outbound.RecipeSuggestion{
		Name:         "Tomato Pasta",
		Description:  "Quick pasta",
		ServingSize:  2,
		CookingTime:  25,
		Difficulty:   "Easy",
		Instructions: []string{"Boil", "Sauce"},
		RequiredIngredients: []outbound.SuggestedIngredient{
			// The engine's availability flags are stored as given;
			// they only get refreshed on detail fetch.
			{Name: "pasta", Quantity: "200g", Available: false},
			{Name: "Basil", Quantity: "a few leaves", Available: true},
		},
		MatchPercentage: 50,
	}

	m.ingredientRepo.On("FindAll", ctx).Return(snapshot, nil)
	m.chef.On("SuggestRecipes", ctx, mock.Anything, 4).Return([]outbound.RecipeSuggestion{suggestion}, nil)
	m.recipeRepo.On("Create", ctx, mock.AnythingOfType("*recipe.Recipe")).Return(nil)

	recipes, err := svc.SuggestRecipes(ctx, 4)
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.Equal(t, "Tomato Pasta", r.Name)
	// The requested serving size wins over the engine's echo.
	assert.Equal(t, 4, r.ServingSize)
	assert.Equal(t, recipe.DifficultyEasy, r.Difficulty)
	require.NotNil(t, r.CookingTime)
	assert.Equal(t, 25, *r.CookingTime)
	require.NotNil(t, r.MatchPercentage)
	assert.Equal(t, 50, *r.MatchPercentage)
	require.Len(t, r.Ingredients, 2)
	assert.False(t, r.Ingredients[0].Available)
	assert.True(t, r.Ingredients[1].Available)

	m.recipeRepo.AssertExpectations(t)
}

func TestSuggestRecipesEmptyInventory(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	m.ingredientRepo.On("FindAll", ctx).Return([]*inventory.Ingredient{}, nil)

	recipes, err := svc.SuggestRecipes(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	m.chef.AssertNotCalled(t, "SuggestRecipes", mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestRecipesChefFailure(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	m.ingredientRepo.On("FindAll", ctx).Return(testSnapshot(t, "Pasta"), nil)
	m.chef.On("SuggestRecipes", ctx, mock.Anything, 2).Return(nil, errors.New("upstream down"))

	_, err := svc.SuggestRecipes(ctx, 2)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func TestSuggestRecipesNormalizesSuggestionFields(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	suggestion := outbound.RecipeSuggestion{
		Name:            "Mystery Dish",
		ServingSize:     0,
		Difficulty:      "Impossible",
		Instructions:    []string{"Improvise"},
		MatchPercentage: 150,
	}

	m.ingredientRepo.On("FindAll", ctx).Return(testSnapshot(t, "Pasta"), nil)
	m.chef.On("SuggestRecipes", ctx, mock.Anything, 2).Return([]outbound.RecipeSuggestion{suggestion}, nil)
	m.recipeRepo.On("Create", ctx, mock.Anything).Return(nil)

	recipes, err := svc.SuggestRecipes(ctx, 2)
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	assert.Equal(t, 2, recipes[0].ServingSize)
	assert.Equal(t, recipe.DifficultyMedium, recipes[0].Difficulty)
	require.NotNil(t, recipes[0].MatchPercentage)
	assert.Equal(t, 100, *recipes[0].MatchPercentage)
}

func TestSuggestRecipesSkipsMalformedSuggestion(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	good := outbound.RecipeSuggestion{
		Name:         "Good Dish",
		ServingSize:  2,
		Difficulty:   "Easy",
		Instructions: []string{"Cook"},
	}
	bad := outbound.RecipeSuggestion{
		Name:        "",
		ServingSize: 2,
		Difficulty:  "Easy",
	}

	m.ingredientRepo.On("FindAll", ctx).Return(testSnapshot(t, "Pasta"), nil)
	m.chef.On("SuggestRecipes", ctx, mock.Anything, 2).Return([]outbound.RecipeSuggestion{bad, good}, nil)
	m.recipeRepo.On("Create", ctx, mock.Anything).Return(nil)

	recipes, err := svc.SuggestRecipes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Good Dish", recipes[0].Name)
}

func TestGetRecipeRecomputesAvailability(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	stored := testRecipe(t, "Salad")
	require.NoError(t, stored.AddIngredient("Lettuce", "1 head", false))

	m.recipeRepo.On("FindByIDWithIngredients", ctx, stored.ID).Return(stored, nil)
	m.ingredientRepo.On("FindAll", ctx).Return(testSnapshot(t, "Lettuce"), nil)
	m.recipeRepo.On("Save", ctx, stored).Return(nil)

	got, err := svc.GetRecipe(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.True(t, got.Ingredients[0].Available)

	// The refreshed flags are written back.
	m.recipeRepo.AssertCalled(t, "Save", ctx, stored)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()
	id := uuid.New()

	m.recipeRepo.On("FindByIDWithIngredients", ctx, id).Return(nil, outbound.ErrNotFound)

	_, err := svc.GetRecipe(ctx, id)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func TestCookRecipe(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	r := testRecipe(t, "Tomato Pasta")
	require.NoError(t, r.AddIngredient("pasta", "200g", true))
	require.NoError(t, r.AddIngredient("Saffron", "1 pinch", false))

	snapshot := testSnapshot(t, "Pasta", "Tomatoes")
	advice := &outbound.OptimizationAdvice{
		Suggestions: []string{"Use the tomatoes in a salad"},
		Warnings:    []string{},
	}

	m.recipeRepo.On("FindByIDWithIngredients", ctx, r.ID).Return(r, nil)
	m.ingredientRepo.On("FindAll", ctx).Return(snapshot, nil)
	m.ingredientRepo.On("Save", ctx, snapshot[0]).Return(nil)
	m.historyRepo.On("Append", ctx, mock.AnythingOfType("*recipe.CookingRecord")).Return(nil)
	m.cache.On("Delete", ctx, "inventory:all").Return(nil)
	// The optimization call only sees what was not consumed.
	m.chef.On("OptimizeLeftovers", ctx, mock.Anything, mock.MatchedBy(func(remaining []outbound.PantryItem) bool {
		return len(remaining) == 1 && remaining[0].Name == "Tomatoes"
	})).Return(advice, nil)

	result, err := svc.CookRecipe(ctx, r.ID)
	require.NoError(t, err)

	// Only the matched ingredient is consumed, recorded under the
	// recipe's own spelling, and flagged low stock rather than removed.
	require.Len(t, result.IngredientsUsed, 1)
	assert.Equal(t, "pasta", result.IngredientsUsed[0].Name)
	assert.Equal(t, "200g", result.IngredientsUsed[0].QuantityUsed)
	assert.True(t, snapshot[0].IsLowStock)
	assert.False(t, snapshot[1].IsLowStock)

	assert.Equal(t, advice, result.Optimization)
	assert.False(t, result.OptimizationFailed)

	m.historyRepo.AssertExpectations(t)
	m.cache.AssertExpectations(t)
	m.chef.AssertExpectations(t)
}

func TestCookRecipeOptimizationFailureIsNonFatal(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	r := testRecipe(t, "Stew")
	require.NoError(t, r.AddIngredient("Carrots", "3", true))

	snapshot := testSnapshot(t, "Carrots")

	m.recipeRepo.On("FindByIDWithIngredients", ctx, r.ID).Return(r, nil)
	m.ingredientRepo.On("FindAll", ctx).Return(snapshot, nil)
	m.ingredientRepo.On("Save", ctx, mock.Anything).Return(nil)
	m.historyRepo.On("Append", ctx, mock.Anything).Return(nil)
	m.cache.On("Delete", ctx, "inventory:all").Return(nil)
	m.chef.On("OptimizeLeftovers", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	result, err := svc.CookRecipe(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, result.OptimizationFailed)
	assert.Nil(t, result.Optimization)
	require.Len(t, result.IngredientsUsed, 1)
}

func TestCookRecipeNotFound(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()
	id := uuid.New()

	m.recipeRepo.On("FindByIDWithIngredients", ctx, id).Return(nil, outbound.ErrNotFound)

	_, err := svc.CookRecipe(ctx, id)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func TestGenerateImage(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	r := testRecipe(t, "Tomato Pasta")
	imageBytes := []byte("png-bytes")

	m.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
	m.images.On("GenerateImage", ctx, "Tomato Pasta", "A dish").Return(imageBytes, nil)
	m.imageStore.On("Save", ctx, mock.MatchedBy(func(filename string) bool {
		return len(filename) > 4 && filename[len(filename)-4:] == ".png"
	}), imageBytes).Return("/images/abc.png", nil)
	m.recipeRepo.On("Save", ctx, r).Return(nil)

	result, err := svc.GenerateImage(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, result.Generated)
	assert.Equal(t, "/images/abc.png", result.ImageURL)
	assert.Equal(t, "/images/abc.png", r.ImageURL)

	m.imageStore.AssertExpectations(t)
	m.recipeRepo.AssertExpectations(t)
}

func TestGenerateImageUnconfiguredProvider(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	r := testRecipe(t, "Soup")

	m.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
	m.images.On("GenerateImage", ctx, "Soup", "A dish").Return(nil, nil)

	result, err := svc.GenerateImage(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, result.Generated)
	assert.Empty(t, result.ImageURL)

	m.imageStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	m.recipeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGenerateImageProviderFailure(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	r := testRecipe(t, "Soup")

	m.recipeRepo.On("FindByID", ctx, r.ID).Return(r, nil)
	m.images.On("GenerateImage", ctx, "Soup", "A dish").Return(nil, errors.New("upstream down"))

	_, err := svc.GenerateImage(ctx, r.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func TestListRecipes(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	stored := []*recipe.Recipe{testRecipe(t, "One"), testRecipe(t, "Two")}
	m.recipeRepo.On("FindAll", ctx).Return(stored, nil)

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, recipes)
}

func TestHistory(t *testing.T) {
	svc, m := createTestService(t)
	ctx := context.Background()

	records := []*recipe.CookingRecord{
		recipe.NewCookingRecord(uuid.New(), []recipe.UsedIngredient{{Name: "Rice", QuantityUsed: "200g"}}),
	}
	m.historyRepo.On("FindAll", ctx).Return(records, nil)

	got, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
