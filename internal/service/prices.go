package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mstrelkov/jewelstock/internal/logging"
	"github.com/mstrelkov/jewelstock/internal/models"
	"github.com/mstrelkov/jewelstock/internal/repo"
)

type PriceService struct {
	Repo     *repo.GormRepo
	Producer Publisher
}

func (s *PriceService) GetCurrent(ctx context.Context) (*models.MetalPrice, error) {
	return s.Repo.GetCurrentPrice(ctx)
}

func (s *PriceService) SetCurrent(ctx context.Context, gold, silver, platinum float64, updatedBy uuid.UUID) (*models.MetalPrice, error) {
	l := logging.FromContext(ctx).With("svc", "prices.set_current")

	if gold <= 0 || silver <= 0 || platinum <= 0 {
		return nil, fmt.Errorf("%w: all three prices must be positive", ErrInvalidInput)
	}

	price, err := s.Repo.SetCurrentPrice(ctx, gold, silver, platinum, updatedBy)
	if err != nil {
		l.Error("set_prices_failed", "error", err)
		return nil, err
	}

	publish(ctx, s.Producer, "price_events", updatedBy.String(), map[string]interface{}{
		"type":           "prices_updated",
		"gold_price":     price.GoldPrice,
		"silver_price":   price.SilverPrice,
		"platinum_price": price.PlatinumPrice,
		"updated_by":     updatedBy.String(),
	})

	l.Info("prices_updated", "updated_by", updatedBy.String())
	return price, nil
}
