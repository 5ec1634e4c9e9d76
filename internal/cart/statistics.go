package cart

import (
	"go-wemall-api/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statistics is derived per request and never persisted. All counts
// are quantity-weighted: a line with quantity 3 contributes 3.
type Statistics struct {
	TotalItems       int64
	CheckedItems     int64
	AvailableItems   int64
	UnavailableItems int64
	TotalPrice       decimal.Decimal
	CheckedPrice     decimal.Decimal
}

// ComputeStatistics folds cart lines and their live snapshots into
// aggregate counts and price sums. A line whose SKU no longer resolves
// still counts toward TotalItems/CheckedItems and is tallied as
// unavailable, but contributes nothing to the price sums.
func ComputeStatistics(items []Item, snapshots map[uuid.UUID]catalog.SkuSnapshot) Statistics {
	stats := Statistics{
		TotalPrice:   decimal.Zero,
		CheckedPrice: decimal.Zero,
	}

	for _, item := range items {
		qty := int64(item.Quantity)
		stats.TotalItems += qty
		if item.Checked {
			stats.CheckedItems += qty
		}

		snap, resolved := snapshots[item.SkuID]
		var snapRef *catalog.SkuSnapshot
		if resolved {
			snapRef = &snap
		}

		if EvaluateAvailability(snapRef, item.Quantity).Available {
			stats.AvailableItems += qty
		} else {
			stats.UnavailableItems += qty
		}

		if resolved {
			line := snap.Price.Mul(decimal.NewFromInt32(item.Quantity))
			stats.TotalPrice = stats.TotalPrice.Add(line)
			if item.Checked {
				stats.CheckedPrice = stats.CheckedPrice.Add(line)
			}
		}
	}

	return stats
}
