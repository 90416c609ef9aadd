package gorm

import (
	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
)

// IngredientToModel converts a domain ingredient to a GORM model
func IngredientToModel(in *inventory.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:             in.ID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		Category:       string(in.Category),
		PurchaseDate:   in.PurchaseDate,
		ExpirationDate: in.ExpirationDate,
		IsLowStock:     in.IsLowStock,
		CreatedAt:      in.CreatedAt,
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) *inventory.Ingredient {
	return &inventory.Ingredient{
		ID:             m.ID,
		Name:           m.Name,
		Quantity:       m.Quantity,
		Category:       inventory.Category(m.Category),
		PurchaseDate:   m.PurchaseDate,
		ExpirationDate: m.ExpirationDate,
		IsLowStock:     m.IsLowStock,
		CreatedAt:      m.CreatedAt,
	}
}

// RecipeToModel converts a domain recipe to a GORM model.
// Requirement rows are mapped alongside so a single Create persists both.
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		ServingSize:     r.ServingSize,
		CookingTime:     r.CookingTime,
		Difficulty:      string(r.Difficulty),
		Instructions:    StringSlice(r.Instructions),
		ImageURL:        r.ImageURL,
		MatchPercentage: r.MatchPercentage,
		CreatedAt:       r.CreatedAt,
	}

	for _, ing := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, RecipeIngredientModel{
			ID:        ing.ID,
			RecipeID:  r.ID,
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Available: ing.Available,
		})
	}

	return model
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	r := &recipe.Recipe{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		ServingSize:     m.ServingSize,
		CookingTime:     m.CookingTime,
		Difficulty:      recipe.Difficulty(m.Difficulty),
		Instructions:    []string(m.Instructions),
		ImageURL:        m.ImageURL,
		MatchPercentage: m.MatchPercentage,
		CreatedAt:       m.CreatedAt,
	}

	for _, ing := range m.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.RequiredIngredient{
			ID:        ing.ID,
			RecipeID:  ing.RecipeID,
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Available: ing.Available,
		})
	}

	return r
}

// RequirementToModel converts a single recipe requirement to a GORM model
func RequirementToModel(ing *recipe.RequiredIngredient) *RecipeIngredientModel {
	return &RecipeIngredientModel{
		ID:        ing.ID,
		RecipeID:  ing.RecipeID,
		Name:      ing.Name,
		Quantity:  ing.Quantity,
		Available: ing.Available,
	}
}

// RecordToModel converts a cooking record to a GORM model
func RecordToModel(rec *recipe.CookingRecord) *CookingHistoryModel {
	used := make(UsedIngredientSlice, len(rec.Used))
	for i, u := range rec.Used {
		used[i] = UsedIngredient{Name: u.Name, QuantityUsed: u.QuantityUsed}
	}

	return &CookingHistoryModel{
		ID:              rec.ID,
		RecipeID:        rec.RecipeID,
		CookedAt:        rec.CookedAt,
		IngredientsUsed: used,
	}
}

// ModelToRecord converts a GORM model to a cooking record
func ModelToRecord(m *CookingHistoryModel) *recipe.CookingRecord {
	used := make([]recipe.UsedIngredient, len(m.IngredientsUsed))
	for i, u := range m.IngredientsUsed {
		used[i] = recipe.UsedIngredient{Name: u.Name, QuantityUsed: u.QuantityUsed}
	}

	return &recipe.CookingRecord{
		ID:       m.ID,
		RecipeID: m.RecipeID,
		CookedAt: m.CookedAt,
		Used:     used,
	}
}
