package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeHandlers handles recipe REST API requests
type RecipeHandlers struct {
	service inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(service inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		service: service,
		logger:  logger,
	}
}

type suggestRequest struct {
	ServingSize int `json:"servingSize"`
}

type cookResponse struct {
	Success            bool        `json:"success"`
	Message            string      `json:"message"`
	IngredientsUsed    interface{} `json:"ingredientsUsed"`
	Optimization       interface{} `json:"optimization,omitempty"`
	OptimizationFailed bool        `json:"optimizationFailed,omitempty"`
}

type imageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	Message  string `json:"message"`
}

// SuggestRecipes handles POST /api/recipes/suggest
func (h *RecipeHandlers) SuggestRecipes(w http.ResponseWriter, r *http.Request) {
	// An empty body is fine, the serving size just defaults
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if req.ServingSize <= 0 {
		req.ServingSize = 2
	}

	recipes, err := h.service.SuggestRecipes(r.Context(), req.ServingSize)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toRecipeResponses(recipes))
}

// ListRecipes handles GET /api/recipes
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.ListRecipes(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toRecipeResponses(recipes))
}

// GetRecipe handles GET /api/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toRecipeResponse(recipe))
}

// CookRecipe handles POST /api/recipes/{id}/cook
func (h *RecipeHandlers) CookRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.CookRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	used := result.IngredientsUsed
	resp := cookResponse{
		Success:            true,
		Message:            "Recipe cooked successfully!",
		IngredientsUsed:    used,
		OptimizationFailed: result.OptimizationFailed,
	}
	if used == nil {
		resp.IngredientsUsed = []interface{}{}
	}
	if result.Optimization != nil {
		resp.Optimization = result.Optimization
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// GenerateImage handles POST /api/recipes/{id}/generate-image
func (h *RecipeHandlers) GenerateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GenerateImage(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := imageResponse{
		Success:  result.Generated,
		ImageURL: result.ImageURL,
		Message:  "Image generated successfully!",
	}
	if !result.Generated {
		// The provider being unconfigured is a normal outcome
		resp.Message = "Image generation is not available"
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// History handles GET /api/history
func (h *RecipeHandlers) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toHistoryResponses(records))
}

// HealthCheck handles GET /api/health
func (h *RecipeHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (h *RecipeHandlers) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid recipe ID"})
		return uuid.Nil, false
	}
	return id, true
}
