package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIngredient(t *testing.T) {
	expiry := time.Now().Add(72 * time.Hour)

	ingredient, err := NewIngredient("Tomatoes", "500g", CategoryVegetables, &expiry)
	require.NoError(t, err)

	assert.NotEqual(t, "", ingredient.ID.String())
	assert.Equal(t, "Tomatoes", ingredient.Name)
	assert.Equal(t, "500g", ingredient.Quantity)
	assert.Equal(t, CategoryVegetables, ingredient.Category)
	assert.False(t, ingredient.IsLowStock)
	assert.WithinDuration(t, time.Now(), ingredient.PurchaseDate, time.Second)
	require.NotNil(t, ingredient.ExpirationDate)
	assert.Equal(t, expiry, *ingredient.ExpirationDate)
}

func TestNewIngredientWithoutExpiration(t *testing.T) {
	ingredient, err := NewIngredient("Salt", "1kg", CategoryPantry, nil)
	require.NoError(t, err)
	assert.Nil(t, ingredient.ExpirationDate)
}

func TestNewIngredientValidation(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		quantity   string
		category   Category
		wantErr    error
	}{
		{"empty name", "", "500g", CategoryVegetables, ErrEmptyName},
		{"empty quantity", "Tomatoes", "", CategoryVegetables, ErrEmptyQuantity},
		{"empty category", "Tomatoes", "500g", Category(""), ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIngredient(tt.ingredient, tt.quantity, tt.category, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMarkLowStock(t *testing.T) {
	ingredient, err := NewIngredient("Milk", "1L", CategoryDairy, nil)
	require.NoError(t, err)

	ingredient.MarkLowStock()
	assert.True(t, ingredient.IsLowStock)

	// Marking twice stays low stock
	ingredient.MarkLowStock()
	assert.True(t, ingredient.IsLowStock)
}

func TestExpiresBefore(t *testing.T) {
	now := time.Now()
	soon := now.Add(24 * time.Hour)
	later := now.Add(10 * 24 * time.Hour)

	expiring, err := NewIngredient("Chicken", "300g", CategoryMeat, &soon)
	require.NoError(t, err)
	fresh, err := NewIngredient("Rice", "2kg", CategoryPantry, &later)
	require.NoError(t, err)
	noDate, err := NewIngredient("Salt", "1kg", CategoryPantry, nil)
	require.NoError(t, err)

	cutoff := now.Add(3 * 24 * time.Hour)
	assert.True(t, expiring.ExpiresBefore(cutoff))
	assert.False(t, fresh.ExpiresBefore(cutoff))
	assert.False(t, noDate.ExpiresBefore(cutoff))
}

func TestExpiresBeforeIncludesAlreadyExpired(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)

	expired, err := NewIngredient("Yogurt", "500g", CategoryDairy, &past)
	require.NoError(t, err)

	assert.True(t, expired.ExpiresBefore(time.Now().Add(3*24*time.Hour)))
}
