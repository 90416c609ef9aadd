package recipe

import "errors"

// Domain validation errors for recipes.
var (
	ErrEmptyName              = errors.New("recipe name must not be empty")
	ErrInvalidServingSize     = errors.New("serving size must be positive")
	ErrInvalidDifficulty      = errors.New("difficulty must be Easy, Medium or Hard")
	ErrNoInstructions         = errors.New("recipe must have at least one instruction step")
	ErrInvalidMatchPercentage = errors.New("match percentage must be between 0 and 100")
	ErrEmptyIngredientName    = errors.New("required ingredient name must not be empty")
)
