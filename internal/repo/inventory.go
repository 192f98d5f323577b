package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/transport"
)

func (r *GormRepo) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetItems(ctx context.Context, offset, limit int) (int64, []models.InventoryItem, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.InventoryItem{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.InventoryItem
	if err := r.DB.WithContext(ctx).Model(&models.InventoryItem{}).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	var existing models.InventoryItem
	err := r.DB.WithContext(ctx).Where("sku = ?", item.SKU).First(&existing).Error
	if err == nil {
		return ErrSKUAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) PatchItem(ctx context.Context, req transport.UpdateItemRequest, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.MetalType != nil {
		item.MetalType = *req.MetalType
	}
	if req.WeightGrams != nil {
		item.WeightGrams = *req.WeightGrams
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.PhotoBase64 != nil {
		item.PhotoBase64 = *req.PhotoBase64
	}

	if err := r.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
