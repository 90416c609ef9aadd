// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fridgechef/v1/internal/domain/inventory"
	"github.com/fridgechef/v1/internal/domain/recipe"
	apperrors "github.com/fridgechef/v1/pkg/errors"
	"go.uber.org/zap"
)

// errorResponse is the wire shape for every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is the wire shape for bare acknowledgements
type successResponse struct {
	Success bool `json:"success"`
}

// ingredientResponse is the wire shape for an inventory item
type ingredientResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Quantity       string     `json:"quantity"`
	Category       string     `json:"category"`
	PurchaseDate   time.Time  `json:"purchaseDate"`
	ExpirationDate *time.Time `json:"expirationDate"`
	IsLowStock     bool       `json:"isLowStock"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// requiredIngredientResponse is the wire shape for a recipe requirement
type requiredIngredientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Available bool   `json:"available"`
}

// recipeResponse is the wire shape for a recipe
type recipeResponse struct {
	ID                  string                       `json:"id"`
	Name                string                       `json:"name"`
	Description         string                       `json:"description"`
	ServingSize         int                          `json:"servingSize"`
	CookingTime         *int                         `json:"cookingTime"`
	Difficulty          string                       `json:"difficulty"`
	Instructions        []string                     `json:"instructions"`
	ImageURL            string                       `json:"imageUrl,omitempty"`
	MatchPercentage     *int                         `json:"matchPercentage"`
	CreatedAt           time.Time                    `json:"createdAt"`
	RequiredIngredients []requiredIngredientResponse `json:"requiredIngredients"`
}

// historyResponse is the wire shape for a cooking history entry
type historyResponse struct {
	ID              string                  `json:"id"`
	RecipeID        string                  `json:"recipeId"`
	CookedAt        time.Time               `json:"cookedAt"`
	IngredientsUsed []recipe.UsedIngredient `json:"ingredientsUsed"`
}

func toIngredientResponse(in *inventory.Ingredient) ingredientResponse {
	return ingredientResponse{
		ID:             in.ID.String(),
		Name:           in.Name,
		Quantity:       in.Quantity,
		Category:       string(in.Category),
		PurchaseDate:   in.PurchaseDate,
		ExpirationDate: in.ExpirationDate,
		IsLowStock:     in.IsLowStock,
		CreatedAt:      in.CreatedAt,
	}
}

func toIngredientResponses(items []*inventory.Ingredient) []ingredientResponse {
	out := make([]ingredientResponse, len(items))
	for i, item := range items {
		out[i] = toIngredientResponse(item)
	}
	return out
}

func toRecipeResponse(r *recipe.Recipe) recipeResponse {
	required := make([]requiredIngredientResponse, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		required[i] = requiredIngredientResponse{
			ID:        ing.ID.String(),
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Available: ing.Available,
		}
	}

	return recipeResponse{
		ID:                  r.ID.String(),
		Name:                r.Name,
		Description:         r.Description,
		ServingSize:         r.ServingSize,
		CookingTime:         r.CookingTime,
		Difficulty:          string(r.Difficulty),
		Instructions:        r.Instructions,
		ImageURL:            r.ImageURL,
		MatchPercentage:     r.MatchPercentage,
		CreatedAt:           r.CreatedAt,
		RequiredIngredients: required,
	}
}

func toRecipeResponses(recipes []*recipe.Recipe) []recipeResponse {
	out := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = toRecipeResponse(r)
	}
	return out
}

func toHistoryResponses(records []*recipe.CookingRecord) []historyResponse {
	out := make([]historyResponse, len(records))
	for i, rec := range records {
		used := rec.Used
		if used == nil {
			used = []recipe.UsedIngredient{}
		}
		out[i] = historyResponse{
			ID:              rec.ID.String(),
			RecipeID:        rec.RecipeID.String(),
			CookedAt:        rec.CookedAt,
			IngredientsUsed: used,
		}
	}
	return out
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors onto HTTP status codes with the
// {"error": "..."} body every endpoint uses for failures.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("code", string(appErr.Code)),
				zap.String("message", appErr.Message),
				zap.Error(appErr.Cause),
			)
		}
		writeJSON(w, logger, appErr.StatusCode(), errorResponse{Error: appErr.Message})
		return
	}

	logger.Error("Unhandled error", zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}
