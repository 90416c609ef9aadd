package gorm

import (
	"context"

	"github.com/fridgechef/v1/internal/domain/recipe"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// HistoryRepository implements the cooking history repository interface using GORM
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new cooking history repository
func NewHistoryRepository(db *gorm.DB) outbound.HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append persists a new cooking record
func (r *HistoryRepository) Append(ctx context.Context, rec *recipe.CookingRecord) error {
	model := RecordToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	rec.ID = model.ID
	return nil
}

// FindAll returns every cooking record, most recent first
func (r *HistoryRepository) FindAll(ctx context.Context) ([]*recipe.CookingRecord, error) {
	var models []CookingHistoryModel

	result := r.db.WithContext(ctx).
		Order("cooked_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*recipe.CookingRecord, len(models))
	for i, model := range models {
		records[i] = ModelToRecord(&model)
	}

	return records, nil
}
