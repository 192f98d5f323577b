package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mstrelkov/jewelstock/internal/logging"
	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/repo"
	"github.com/mstrelkov/jewelstock/internal/transport"
)

// Indexer mirrors the search client. Index writes are best-effort; the
// database stays the source of truth.
type Indexer interface {
	IndexItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type InventoryService struct {
	Repo     *repo.GormRepo
	Producer Publisher
	Index    Indexer
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	return s.Repo.GetItem(ctx, id)
}

func (s *InventoryService) GetItems(ctx context.Context, offset, limit int) (int64, []models.InventoryItem, error) {
	return s.Repo.GetItems(ctx, offset, limit)
}

func (s *InventoryService) CreateItem(ctx context.Context, req transport.CreateItemRequest, createdBy uuid.UUID) (*models.InventoryItem, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.create")

	if strings.TrimSpace(req.SKU) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: sku and name are required", ErrInvalidInput)
	}
	if !models.ValidMetalType(req.MetalType) {
		return nil, fmt.Errorf("%w: unknown metal type %q", ErrInvalidInput, req.MetalType)
	}
	if req.WeightGrams <= 0 {
		return nil, fmt.Errorf("%w: weight_grams must be positive", ErrInvalidInput)
	}
	if req.CostPrice <= 0 {
		return nil, fmt.Errorf("%w: cost_price must be positive", ErrInvalidInput)
	}

	item := models.InventoryItem{
		SKU:         strings.TrimSpace(req.SKU),
		Name:        strings.TrimSpace(req.Name),
		MetalType:   req.MetalType,
		WeightGrams: req.WeightGrams,
		CostPrice:   req.CostPrice,
		Description: req.Description,
		PhotoBase64: req.PhotoBase64,
		CreatedBy:   createdBy,
	}
	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}

	s.index(ctx, &item)
	publish(ctx, s.Producer, "inventory_events", item.ID.String(), map[string]interface{}{
		"type":       "item_created",
		"item_id":    item.ID.String(),
		"sku":        item.SKU,
		"created_by": createdBy.String(),
	})

	l.Info("item_created", "item_id", item.ID.String(), "sku", item.SKU)
	return &item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, req transport.UpdateItemRequest, id uuid.UUID) (*models.InventoryItem, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.update")

	if req.MetalType != nil && !models.ValidMetalType(*req.MetalType) {
		return nil, fmt.Errorf("%w: unknown metal type %q", ErrInvalidInput, *req.MetalType)
	}
	if req.WeightGrams != nil && *req.WeightGrams <= 0 {
		return nil, fmt.Errorf("%w: weight_grams must be positive", ErrInvalidInput)
	}
	if req.CostPrice != nil && *req.CostPrice <= 0 {
		return nil, fmt.Errorf("%w: cost_price must be positive", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	item, err := s.Repo.PatchItem(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.index(ctx, item)
	publish(ctx, s.Producer, "inventory_events", item.ID.String(), map[string]interface{}{
		"type":    "item_updated",
		"item_id": item.ID.String(),
		"sku":     item.SKU,
	})

	l.Info("item_updated", "item_id", item.ID.String())
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "inventory.delete")

	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteItem(ctx, id); err != nil {
			l.Error("index delete failed", "item_id", id.String(), "error", err)
		}
	}
	publish(ctx, s.Producer, "inventory_events", id.String(), map[string]interface{}{
		"type":    "item_deleted",
		"item_id": id.String(),
	})

	l.Info("item_deleted", "item_id", id.String())
	return nil
}

func (s *InventoryService) index(ctx context.Context, item *models.InventoryItem) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexItem(ctx, item); err != nil {
		logging.FromContext(ctx).Error("index write failed", "item_id", item.ID.String(), "error", err)
	}
}
