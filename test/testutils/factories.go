// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
)

// IngredientBuilder provides a fluent interface for building test ingredients
type IngredientBuilder struct {
	name           string
	quantity       string
	category       inventory.Category
	expirationDate *time.Time
	isLowStock     bool
}

// NewIngredientBuilder creates a new ingredient builder with faked defaults
func NewIngredientBuilder() *IngredientBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &IngredientBuilder{
		name:     faker.Vegetable(),
		quantity: fmt.Sprintf("%d g", faker.Number(50, 1000)),
		category: inventory.CategoryPantry,
	}
}

// WithName sets the ingredient name
func (b *IngredientBuilder) WithName(name string) *IngredientBuilder {
	b.name = name
	return b
}

// WithQuantity sets the ingredient quantity
func (b *IngredientBuilder) WithQuantity(quantity string) *IngredientBuilder {
	b.quantity = quantity
	return b
}

// WithCategory sets the ingredient category
func (b *IngredientBuilder) WithCategory(category inventory.Category) *IngredientBuilder {
	b.category = category
	return b
}

// WithExpirationDate sets the expiration date
func (b *IngredientBuilder) WithExpirationDate(t time.Time) *IngredientBuilder {
	b.expirationDate = &t
	return b
}

// WithLowStock marks the ingredient as low stock
func (b *IngredientBuilder) WithLowStock() *IngredientBuilder {
	b.isLowStock = true
	return b
}

// Build creates the ingredient
func (b *IngredientBuilder) Build() *inventory.Ingredient {
	ingredient, err := inventory.NewIngredient(b.name, b.quantity, b.category, b.expirationDate)
	if err != nil {
		panic(fmt.Sprintf("invalid test ingredient: %v", err))
	}
	if b.isLowStock {
		ingredient.MarkLowStock()
	}
	return ingredient
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	name         string
	description  string
	servingSize  int
	cookingTime  int
	difficulty   recipe.Difficulty
	instructions []string
	ingredients  []testIngredient
	matchPct     int
}

type testIngredient struct {
	name      string
	quantity  string
	available bool
}

// NewRecipeBuilder creates a new recipe builder with faked defaults
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		name:        faker.Dinner(),
		description: faker.Sentence(8),
		servingSize: 2,
		cookingTime: faker.Number(10, 90),
		difficulty:  recipe.DifficultyEasy,
		instructions: []string{
			"Prepare the ingredients",
			"Cook everything together",
			"Serve hot",
		},
		matchPct: faker.Number(0, 100),
	}
}

// WithName sets the recipe name
func (b *RecipeBuilder) WithName(name string) *RecipeBuilder {
	b.name = name
	return b
}

// WithServingSize sets the serving size
func (b *RecipeBuilder) WithServingSize(size int) *RecipeBuilder {
	b.servingSize = size
	return b
}

// WithDifficulty sets the difficulty
func (b *RecipeBuilder) WithDifficulty(d recipe.Difficulty) *RecipeBuilder {
	b.difficulty = d
	return b
}

// WithInstructions sets the instructions
func (b *RecipeBuilder) WithInstructions(steps ...string) *RecipeBuilder {
	b.instructions = steps
	return b
}

// WithIngredient adds a required ingredient
func (b *RecipeBuilder) WithIngredient(name, quantity string, available bool) *RecipeBuilder {
	b.ingredients = append(b.ingredients, testIngredient{name: name, quantity: quantity, available: available})
	return b
}

// WithMatchPercentage sets the match percentage
func (b *RecipeBuilder) WithMatchPercentage(pct int) *RecipeBuilder {
	b.matchPct = pct
	return b
}

// Build creates the recipe
func (b *RecipeBuilder) Build() *recipe.Recipe {
	r, err := recipe.NewRecipe(b.name, b.description, b.servingSize, b.difficulty, b.instructions)
	if err != nil {
		panic(fmt.Sprintf("invalid test recipe: %v", err))
	}

	r.SetCookingTime(b.cookingTime)
	if err := r.SetMatchPercentage(b.matchPct); err != nil {
		panic(fmt.Sprintf("invalid test match percentage: %v", err))
	}

	for _, ing := range b.ingredients {
		if err := r.AddIngredient(ing.name, ing.quantity, ing.available); err != nil {
			panic(fmt.Sprintf("invalid test requirement: %v", err))
		}
	}

	return r
}
