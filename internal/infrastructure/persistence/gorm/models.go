// Package gorm provides GORM model definitions and repository implementations
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientModel represents the GORM model for fridge ingredients
type IngredientModel struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null;index"`
	Quantity       string     `gorm:"type:varchar(100);not null"`
	Category       string     `gorm:"type:varchar(50);not null;index"`
	PurchaseDate   time.Time  `gorm:"not null"`
	ExpirationDate *time.Time `gorm:"index"`
	IsLowStock     bool       `gorm:"default:false"`
	CreatedAt      time.Time  `gorm:"index"`
}

// RecipeModel represents the GORM model for suggested recipes
type RecipeModel struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null;index"`
	Description     string    `gorm:"type:text;not null"`
	ServingSize     int       `gorm:"not null;default:2"`
	CookingTime     *int
	Difficulty      string      `gorm:"type:varchar(20);index"`
	Instructions    StringSlice `gorm:"type:json;not null"`
	ImageURL        string      `gorm:"type:text"`
	MatchPercentage *int
	CreatedAt       time.Time `gorm:"index"`

	// Relationships
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// RecipeIngredientModel represents the GORM model for a recipe requirement
type RecipeIngredientModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  string    `gorm:"type:varchar(100);not null"`
	Available bool      `gorm:"default:false"`
}

// CookingHistoryModel represents the GORM model for cooking history entries
type CookingHistoryModel struct {
	ID              uuid.UUID           `gorm:"type:char(36);primaryKey"`
	RecipeID        uuid.UUID           `gorm:"type:char(36);not null;index"`
	CookedAt        time.Time           `gorm:"index"`
	IngredientsUsed UsedIngredientSlice `gorm:"type:json;not null"`

	// Relationships
	Recipe RecipeModel `gorm:"foreignKey:RecipeID"`
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// UsedIngredient mirrors the JSON shape stored for history entries
type UsedIngredient struct {
	Name         string `json:"name"`
	QuantityUsed string `json:"quantityUsed"`
}

// UsedIngredientSlice custom type for handling used-ingredient lists in JSON
type UsedIngredientSlice []UsedIngredient

// Scan implements the sql.Scanner interface
func (s *UsedIngredientSlice) Scan(value interface{}) error {
	if value == nil {
		*s = UsedIngredientSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into UsedIngredientSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s UsedIngredientSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeIngredientModel
func (r *RecipeIngredientModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for CookingHistoryModel
func (c *CookingHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (IngredientModel) TableName() string {
	return "ingredients"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

func (CookingHistoryModel) TableName() string {
	return "cooking_history"
}
