package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/v1/internal/domain/inventory"
)

func TestNewRecipe(t *testing.T) {
	r, err := NewRecipe("Tomato Pasta", "Quick weeknight pasta", 2, DifficultyEasy,
		[]string{"Boil pasta", "Make sauce", "Combine"})
	require.NoError(t, err)

	assert.NotEqual(t, "", r.ID.String())
	assert.Equal(t, "Tomato Pasta", r.Name)
	assert.Equal(t, "Quick weeknight pasta", r.Description)
	assert.Equal(t, 2, r.ServingSize)
	assert.Equal(t, DifficultyEasy, r.Difficulty)
	assert.Len(t, r.Instructions, 3)
	assert.Nil(t, r.CookingTime)
	assert.Nil(t, r.MatchPercentage)
	assert.Empty(t, r.Ingredients)
}

func TestNewRecipeValidation(t *testing.T) {
	instructions := []string{"Cook it"}

	tests := []struct {
		name         string
		recipeName   string
		servingSize  int
		difficulty   Difficulty
		instructions []string
		wantErr      error
	}{
		{"empty name", "", 2, DifficultyEasy, instructions, ErrEmptyName},
		{"whitespace name", "   ", 2, DifficultyEasy, instructions, ErrEmptyName},
		{"zero serving size", "Soup", 0, DifficultyEasy, instructions, ErrInvalidServingSize},
		{"negative serving size", "Soup", -1, DifficultyEasy, instructions, ErrInvalidServingSize},
		{"unknown difficulty", "Soup", 2, Difficulty("Extreme"), instructions, ErrInvalidDifficulty},
		{"no instructions", "Soup", 2, DifficultyEasy, nil, ErrNoInstructions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecipe(tt.recipeName, "", tt.servingSize, tt.difficulty, tt.instructions)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyEasy.Valid())
	assert.True(t, DifficultyMedium.Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("easy").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestSetCookingTime(t *testing.T) {
	r, err := NewRecipe("Stew", "", 4, DifficultyMedium, []string{"Simmer"})
	require.NoError(t, err)

	r.SetCookingTime(45)
	require.NotNil(t, r.CookingTime)
	assert.Equal(t, 45, *r.CookingTime)

	// Non-positive values are ignored
	r.SetCookingTime(0)
	assert.Equal(t, 45, *r.CookingTime)
}

func TestSetMatchPercentage(t *testing.T) {
	r, err := NewRecipe("Stew", "", 4, DifficultyMedium, []string{"Simmer"})
	require.NoError(t, err)

	require.NoError(t, r.SetMatchPercentage(85))
	require.NotNil(t, r.MatchPercentage)
	assert.Equal(t, 85, *r.MatchPercentage)

	assert.ErrorIs(t, r.SetMatchPercentage(-1), ErrInvalidMatchPercentage)
	assert.ErrorIs(t, r.SetMatchPercentage(101), ErrInvalidMatchPercentage)

	require.NoError(t, r.SetMatchPercentage(0))
	require.NoError(t, r.SetMatchPercentage(100))
}

func TestAddIngredient(t *testing.T) {
	r, err := NewRecipe("Omelette", "", 1, DifficultyEasy, []string{"Whisk", "Fry"})
	require.NoError(t, err)

	require.NoError(t, r.AddIngredient("Eggs", "3", true))
	require.NoError(t, r.AddIngredient("Butter", "1 tbsp", false))

	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, r.ID, r.Ingredients[0].RecipeID)
	assert.Equal(t, "Eggs", r.Ingredients[0].Name)
	assert.True(t, r.Ingredients[0].Available)
	assert.False(t, r.Ingredients[1].Available)

	assert.ErrorIs(t, r.AddIngredient("  ", "1", true), ErrEmptyIngredientName)
}

func TestRecomputeAvailability(t *testing.T) {
	r, err := NewRecipe("Salad", "", 2, DifficultyEasy, []string{"Toss"})
	require.NoError(t, err)
	require.NoError(t, r.AddIngredient("Lettuce", "1 head", false))
	require.NoError(t, r.AddIngredient("Tomatoes", "2", true))

	lettuce, err := inventory.NewIngredient("lettuce", "1 head", inventory.CategoryVegetables, nil)
	require.NoError(t, err)

	r.RecomputeAvailability([]*inventory.Ingredient{lettuce})

	assert.True(t, r.Ingredients[0].Available, "stored flag must be overwritten by live inventory")
	assert.False(t, r.Ingredients[1].Available)
}

func TestNewCookingRecord(t *testing.T) {
	r, err := NewRecipe("Curry", "", 2, DifficultyMedium, []string{"Cook"})
	require.NoError(t, err)

	used := []UsedIngredient{{Name: "Rice", QuantityUsed: "200g"}}
	record := NewCookingRecord(r.ID, used)

	assert.NotEqual(t, "", record.ID.String())
	assert.Equal(t, r.ID, record.RecipeID)
	assert.Equal(t, used, record.Used)
	assert.False(t, record.CookedAt.IsZero())
}
