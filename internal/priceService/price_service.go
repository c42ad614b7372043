package price

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// PriceService aggregates completed-order prices into daily history per
// fish type. Aggregation uses decimal arithmetic so averages don't drift
// with float accumulation.
type PriceService struct {
	repo repository.MarketDB
}

// NewPriceService creates a new PriceService instance
func NewPriceService(repo repository.MarketDB) *PriceService {
	return &PriceService{
		repo: repo,
	}
}

// History returns up to limit daily price points for a fish type, most
// recent first. A limit of zero means no cap.
func (s *PriceService) History(fishTypeID string, limit int) ([]model.PricePoint, error) {
	if fishTypeID == "" {
		return nil, fmt.Errorf("service: %w - empty fish type ID", marketerrors.ErrFishTypeNotFound)
	}
	points, err := s.repo.PriceHistoryByFishType(fishTypeID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get price history for fish type %s: %w", fishTypeID, err)
	}
	return points, nil
}

// AggregateDay computes one price point per fish type from the orders
// completed on the given day and records them. Returns the recorded
// points.
func (s *PriceService) AggregateDay(day time.Time) ([]model.PricePoint, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	orders, err := s.repo.CompletedOrdersBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get completed orders for %s: %w", from.Format("2006-01-02"), err)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	type bucket struct {
		min, max, amount, volume decimal.Decimal
	}
	buckets := map[string]*bucket{}

	for _, o := range orders {
		l, err := s.repo.GetListing(o.ListingID)
		if err != nil {
			utils.Warn("skipping order with missing listing", map[string]any{"order_id": o.ID, "error": err.Error()})
			continue
		}

		pricePerKg := decimal.NewFromFloat(o.PricePerKg)
		quantity := decimal.NewFromFloat(o.QuantityKg)

		b, ok := buckets[l.FishTypeID]
		if !ok {
			buckets[l.FishTypeID] = &bucket{
				min:    pricePerKg,
				max:    pricePerKg,
				amount: pricePerKg.Mul(quantity),
				volume: quantity,
			}
			continue
		}
		if pricePerKg.LessThan(b.min) {
			b.min = pricePerKg
		}
		if pricePerKg.GreaterThan(b.max) {
			b.max = pricePerKg
		}
		b.amount = b.amount.Add(pricePerKg.Mul(quantity))
		b.volume = b.volume.Add(quantity)
	}

	date := from.Format("2006-01-02")
	points := make([]model.PricePoint, 0, len(buckets))
	for fishTypeID, b := range buckets {
		avg := b.amount.Div(b.volume).Round(2)
		p := model.PricePoint{
			ID:            utils.GenerateID(),
			FishTypeID:    fishTypeID,
			Date:          date,
			MinPrice:      b.min.InexactFloat64(),
			MaxPrice:      b.max.InexactFloat64(),
			AvgPrice:      avg.InexactFloat64(),
			TotalVolumeKg: b.volume.InexactFloat64(),
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.repo.RecordPricePoint(p); err != nil {
			return nil, fmt.Errorf("service: failed to record price point for fish type %s: %w", fishTypeID, err)
		}
		points = append(points, p)
	}

	utils.Info("daily prices aggregated", map[string]any{"date": date, "fish_types": len(points), "orders": len(orders)})
	return points, nil
}
