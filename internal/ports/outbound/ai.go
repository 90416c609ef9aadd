package outbound

import (
	"context"

	"github.com/fridgechef/v1/internal/domain/recipe"
)

// PantryItem is the projection of an inventory ingredient passed to the
// suggestion engine: name plus the free-text quantity, nothing else.
type PantryItem struct {
	Name     string
	Quantity string
}

// RecipeSuggestion is one candidate returned by the suggestion engine.
type RecipeSuggestion struct {
	Name                string
	Description         string
	ServingSize         int
	CookingTime         int
	Difficulty          string
	Instructions        []string
	RequiredIngredients []SuggestedIngredient
	MatchPercentage     int
}

// SuggestedIngredient is one requirement of a candidate recipe, tagged with
// the engine's availability judgement at generation time.
type SuggestedIngredient struct {
	Name      string
	Quantity  string
	Available bool
}

// OptimizationAdvice is the advisory output of the leftover-optimization
// call after cooking: free-text suggestions and spoilage warnings.
type OptimizationAdvice struct {
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`
}

// ChefService is the external suggestion engine boundary. Prioritization of
// near-expiry and large-quantity ingredients happens inside the engine.
type ChefService interface {
	// SuggestRecipes returns a small set of candidate recipes (design
	// target: 3) for the given pantry and serving size.
	SuggestRecipes(ctx context.Context, pantry []PantryItem, servingSize int) ([]RecipeSuggestion, error)

	// OptimizeLeftovers returns advisory suggestions for the ingredients
	// that remain after a cooking session.
	OptimizeLeftovers(ctx context.Context, used []recipe.UsedIngredient, remaining []PantryItem) (*OptimizationAdvice, error)
}

// ImageService is the external image synthesis boundary. A nil byte slice
// with a nil error means the provider is unconfigured or declined to
// produce an image; that is a normal outcome, not a failure.
type ImageService interface {
	GenerateImage(ctx context.Context, name, description string) ([]byte, error)
}

// ImageStore persists generated image bytes and returns the public
// reference path to store on the recipe.
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}
