package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultExpiryDays is the lookahead for the expiring endpoint when the
// caller does not pass ?days=
const defaultExpiryDays = 7

// InventoryHandlers handles inventory REST API requests
type InventoryHandlers struct {
	service inbound.InventoryService
	logger  *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(service inbound.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		service: service,
		logger:  logger,
	}
}

type addIngredientRequest struct {
	Name           string  `json:"name"`
	Quantity       string  `json:"quantity"`
	Category       string  `json:"category"`
	ExpirationDate *string `json:"expirationDate"`
}

type updateIngredientRequest struct {
	Name           *string `json:"name"`
	Quantity       *string `json:"quantity"`
	Category       *string `json:"category"`
	ExpirationDate *string `json:"expirationDate"`
	IsLowStock     *bool   `json:"isLowStock"`
}

// ListIngredients handles GET /api/ingredients
func (h *InventoryHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toIngredientResponses(ingredients))
}

// GetIngredient handles GET /api/ingredients/{id}
func (h *InventoryHandlers) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	ingredient, err := h.service.GetIngredient(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toIngredientResponse(ingredient))
}

// AddIngredient handles POST /api/ingredients
func (h *InventoryHandlers) AddIngredient(w http.ResponseWriter, r *http.Request) {
	var req addIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	expiration, ok := h.parseDate(w, req.ExpirationDate)
	if !ok {
		return
	}

	ingredient, err := h.service.AddIngredient(r.Context(), inbound.AddIngredientCommand{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Category:       req.Category,
		ExpirationDate: expiration,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toIngredientResponse(ingredient))
}

// UpdateIngredient handles PATCH /api/ingredients/{id}
func (h *InventoryHandlers) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req updateIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	expiration, ok := h.parseDate(w, req.ExpirationDate)
	if !ok {
		return
	}

	ingredient, err := h.service.UpdateIngredient(r.Context(), id, inbound.UpdateIngredientCommand{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Category:       req.Category,
		ExpirationDate: expiration,
		IsLowStock:     req.IsLowStock,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toIngredientResponse(ingredient))
}

// RemoveIngredient handles DELETE /api/ingredients/{id}
func (h *InventoryHandlers) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveIngredient(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
}

// ExpiringIngredients handles GET /api/ingredients/expiring
func (h *InventoryHandlers) ExpiringIngredients(w http.ResponseWriter, r *http.Request) {
	days := defaultExpiryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid days parameter"})
			return
		}
		days = parsed
	}

	ingredients, err := h.service.ExpiringIngredients(r.Context(), days)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toIngredientResponses(ingredients))
}

// Stats handles GET /api/stats
func (h *InventoryHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *InventoryHandlers) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid ingredient ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *InventoryHandlers) parseDate(w http.ResponseWriter, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}

	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		// Date-only values are accepted too
		parsed, err = time.Parse("2006-01-02", *raw)
		if err != nil {
			writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "Invalid expiration date"})
			return nil, false
		}
	}

	return &parsed, true
}
