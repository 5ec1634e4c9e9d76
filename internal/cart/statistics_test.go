package cart_test

import (
	"testing"

	"go-wemall-api/internal/cart"
	"go-wemall-api/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	skuA := uuid.New()
	skuB := uuid.New()

	t.Run("quantity_weighted_sums", func(t *testing.T) {
		items := []cart.Item{
			{SkuID: skuA, Quantity: 2, Checked: true},
			{SkuID: skuA, Quantity: 5, Checked: false},
		}
		snapshots := map[uuid.UUID]catalog.SkuSnapshot{
			skuA: {
				SkuActive:     true,
				ProductActive: true,
				Stock:         100,
				Price:         decimal.NewFromInt(10),
			},
		}

		stats := cart.ComputeStatistics(items, snapshots)

		assert.Equal(t, int64(7), stats.TotalItems)
		assert.Equal(t, int64(2), stats.CheckedItems)
		assert.Equal(t, int64(7), stats.AvailableItems)
		assert.Equal(t, int64(0), stats.UnavailableItems)
		assert.Equal(t, "70", stats.TotalPrice.String())
		assert.Equal(t, "20", stats.CheckedPrice.String())
	})

	t.Run("unavailable_lines_still_counted", func(t *testing.T) {
		items := []cart.Item{
			{SkuID: skuA, Quantity: 3, Checked: true},
			{SkuID: skuB, Quantity: 4, Checked: false},
		}
		snapshots := map[uuid.UUID]catalog.SkuSnapshot{
			skuA: {
				SkuActive:     true,
				ProductActive: true,
				Stock:         10,
				Price:         decimal.NewFromFloat(19.99),
			},
			skuB: {
				SkuActive:     false,
				ProductActive: true,
				Stock:         10,
				Price:         decimal.NewFromInt(5),
			},
		}

		stats := cart.ComputeStatistics(items, snapshots)

		assert.Equal(t, int64(7), stats.TotalItems)
		assert.Equal(t, int64(3), stats.CheckedItems)
		assert.Equal(t, int64(3), stats.AvailableItems)
		assert.Equal(t, int64(4), stats.UnavailableItems)
		// the offline SKU still has a price, so it keeps contributing
		assert.Equal(t, "79.97", stats.TotalPrice.String())
		assert.Equal(t, "59.97", stats.CheckedPrice.String())
	})

	t.Run("unresolved_sku_contributes_no_price", func(t *testing.T) {
		items := []cart.Item{
			{SkuID: skuA, Quantity: 2, Checked: true},
		}

		stats := cart.ComputeStatistics(items, map[uuid.UUID]catalog.SkuSnapshot{})

		assert.Equal(t, int64(2), stats.TotalItems)
		assert.Equal(t, int64(2), stats.CheckedItems)
		assert.Equal(t, int64(0), stats.AvailableItems)
		assert.Equal(t, int64(2), stats.UnavailableItems)
		assert.Equal(t, "0", stats.TotalPrice.String())
		assert.Equal(t, "0", stats.CheckedPrice.String())
	})

	t.Run("empty_cart", func(t *testing.T) {
		stats := cart.ComputeStatistics(nil, nil)

		assert.Equal(t, int64(0), stats.TotalItems)
		assert.Equal(t, "0", stats.TotalPrice.String())
		assert.Equal(t, "0", stats.CheckedPrice.String())
	})
}
