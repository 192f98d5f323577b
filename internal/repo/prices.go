package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mstrelkov/jewelstock/internal/models"
)

// GetCurrentPrice returns the singleton price row. When no prices have
// been set yet it returns a zero-valued record with a nil updater.
func (r *GormRepo) GetCurrentPrice(ctx context.Context) (*models.MetalPrice, error) {
	var price models.MetalPrice
	err := r.DB.WithContext(ctx).Where("id = ?", models.CurrentPriceID).First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.MetalPrice{ID: models.CurrentPriceID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// SetCurrentPrice replaces the singleton row in one statement, so two
// concurrent writers can never leave more than one current record.
func (r *GormRepo) SetCurrentPrice(ctx context.Context, gold, silver, platinum float64, updatedBy uuid.UUID) (*models.MetalPrice, error) {
	price := models.MetalPrice{
		ID:            models.CurrentPriceID,
		GoldPrice:     gold,
		SilverPrice:   silver,
		PlatinumPrice: platinum,
		UpdatedAt:     time.Now().UTC(),
		UpdatedBy:     updatedBy,
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}
