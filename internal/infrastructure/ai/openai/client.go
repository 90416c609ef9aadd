// Package openai provides OpenAI-backed recipe suggestion and image generation
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/infrastructure/config"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Client implements the ChefService and ImageService interfaces using the
// OpenAI chat completions and image generation APIs.
type Client struct {
	apiKey      string
	baseURL     string
	chatModel   string
	imageModel  string
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new OpenAI client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if cfg.AI.APIKey == "" {
		logger.Warn("OpenAI API key not configured, suggestion and image endpoints will fail")
	}

	return &Client{
		apiKey:      cfg.AI.APIKey,
		baseURL:     strings.TrimRight(cfg.AI.BaseURL, "/"),
		chatModel:   cfg.AI.ChatModel,
		imageModel:  cfg.AI.ImageModel,
		temperature: cfg.AI.Temperature,
		client: &http.Client{
			Timeout: cfg.AI.RequestTimeout,
		},
		logger: logger,
	}
}

// OpenAI API structures
type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   usage        `json:"usage"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type imageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageGenerationResponse struct {
	Data []imageData `json:"data"`
}

type imageData struct {
	B64JSON string `json:"b64_json"`
}

// suggestionEnvelope is the JSON shape the model is asked to produce
type suggestionEnvelope struct {
	Recipes []suggestedRecipe `json:"recipes"`
}

type suggestedRecipe struct {
	Name                string                `json:"name"`
	Description         string                `json:"description"`
	ServingSize         int                   `json:"servingSize"`
	CookingTime         int                   `json:"cookingTime"`
	Difficulty          string                `json:"difficulty"`
	Instructions        []string              `json:"instructions"`
	RequiredIngredients []suggestedIngredient `json:"requiredIngredients"`
	MatchPercentage     int                   `json:"matchPercentage"`
}

type suggestedIngredient struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Available bool   `json:"available"`
}

// SuggestRecipes asks the model for exactly three recipes cookable from the
// given pantry snapshot.
func (c *Client) SuggestRecipes(ctx context.Context, pantry []outbound.PantryItem, servingSize int) ([]outbound.RecipeSuggestion, error) {
	items := make([]string, len(pantry))
	for i, p := range pantry {
		items[i] = fmt.Sprintf("%s (%s)", p.Name, p.Quantity)
	}

	systemPrompt := `You are a professional chef assistant. Given a list of available ingredients, suggest exactly 3 recipes that can be made primarily with those ingredients. Respond with a JSON object of the form:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "description": "Brief appetizing description",
      "servingSize": 2,
      "cookingTime": 30,
      "difficulty": "Easy",
      "instructions": ["Step 1", "Step 2"],
      "requiredIngredients": [
        {"name": "ingredient", "quantity": "200g", "available": true}
      ],
      "matchPercentage": 85
    }
  ]
}
Difficulty must be one of Easy, Medium or Hard. Mark each required ingredient available only when it appears in the provided list. matchPercentage is the share of required ingredients that are available, 0-100.`

	userPrompt := fmt.Sprintf("Available ingredients: %s.\nSuggest 3 recipes for %d servings.",
		strings.Join(items, ", "), servingSize)

	content, err := c.chatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var envelope suggestionEnvelope
	if err := json.Unmarshal([]byte(extractJSON(content)), &envelope); err != nil {
		c.logger.Error("Failed to parse suggestion response",
			zap.Error(err),
			zap.String("response", content),
		)
		return nil, fmt.Errorf("failed to parse suggestion response: %w", err)
	}

	suggestions := make([]outbound.RecipeSuggestion, len(envelope.Recipes))
	for i, r := range envelope.Recipes {
		ingredients := make([]outbound.SuggestedIngredient, len(r.RequiredIngredients))
		for j, ing := range r.RequiredIngredients {
			ingredients[j] = outbound.SuggestedIngredient{
				Name:      ing.Name,
				Quantity:  ing.Quantity,
				Available: ing.Available,
			}
		}

		suggestions[i] = outbound.RecipeSuggestion{
			Name:                r.Name,
			Description:         r.Description,
			ServingSize:         r.ServingSize,
			CookingTime:         r.CookingTime,
			Difficulty:          r.Difficulty,
			Instructions:        r.Instructions,
			RequiredIngredients: ingredients,
			MatchPercentage:     r.MatchPercentage,
		}
	}

	return suggestions, nil
}

// OptimizeLeftovers asks the model for advisory tips on the ingredients that
// remain after cooking.
func (c *Client) OptimizeLeftovers(ctx context.Context, used []recipe.UsedIngredient, remaining []outbound.PantryItem) (*outbound.OptimizationAdvice, error) {
	usedItems := make([]string, len(used))
	for i, u := range used {
		usedItems[i] = fmt.Sprintf("%s (%s)", u.Name, u.QuantityUsed)
	}

	remainingItems := make([]string, len(remaining))
	for i, p := range remaining {
		remainingItems[i] = fmt.Sprintf("%s (%s)", p.Name, p.Quantity)
	}

	systemPrompt := `You are a kitchen inventory assistant. Given ingredients just used for cooking and the ingredients still in the fridge, suggest how to make the most of the leftovers and warn about anything that should be used soon. Respond with a JSON object of the form:
{"suggestions": ["tip 1", "tip 2"], "warnings": ["warning 1"]}
Both arrays may be empty.`

	userPrompt := fmt.Sprintf("Just used: %s.\nStill in the fridge: %s.",
		strings.Join(usedItems, ", "), strings.Join(remainingItems, ", "))

	content, err := c.chatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var advice outbound.OptimizationAdvice
	if err := json.Unmarshal([]byte(extractJSON(content)), &advice); err != nil {
		c.logger.Error("Failed to parse optimization response",
			zap.Error(err),
			zap.String("response", content),
		)
		return nil, fmt.Errorf("failed to parse optimization response: %w", err)
	}

	if advice.Suggestions == nil {
		advice.Suggestions = []string{}
	}
	if advice.Warnings == nil {
		advice.Warnings = []string{}
	}

	return &advice, nil
}

// GenerateImage renders a photo of the finished dish. Returns nil bytes
// without error when no API key is configured, which callers treat as
// image generation being unavailable.
func (c *Client) GenerateImage(ctx context.Context, name, description string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	reqBody := imageGenerationRequest{
		Model:          c.imageModel,
		Prompt:         fmt.Sprintf("A professional food photograph of %s. %s", name, description),
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	body, err := c.post(ctx, "/images/generations", reqBody)
	if err != nil {
		return nil, err
	}

	var imageResp imageGenerationResponse
	if err := json.Unmarshal(body, &imageResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image response: %w", err)
	}

	if len(imageResp.Data) == 0 {
		return nil, fmt.Errorf("no image data returned")
	}

	data, err := base64.StdEncoding.DecodeString(imageResp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return data, nil
}

// chatCompletion makes a JSON-mode chat completion call
func (c *Client) chatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    c.temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := c.post(ctx, "/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Debug("Chat completion succeeded",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}

// post sends a JSON request to the given API path and returns the raw body
func (c *Client) post(ctx context.Context, path string, reqBody interface{}) ([]byte, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// extractJSON trims any stray text around the JSON object in a model reply
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return response
	}

	return response[start : end+1]
}
