package cart_test

import (
	"testing"

	"go-wemall-api/internal/cart"
	"go-wemall-api/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func snap(skuActive, productActive bool, stock int32) *catalog.SkuSnapshot {
	return &catalog.SkuSnapshot{
		SkuActive:     skuActive,
		ProductActive: productActive,
		Stock:         stock,
		Price:         decimal.NewFromInt(10),
	}
}

func TestEvaluateAvailability(t *testing.T) {
	tests := []struct {
		name      string
		snap      *catalog.SkuSnapshot
		requested int32
		available bool
		reason    cart.Reason
	}{
		{
			name:      "available",
			snap:      snap(true, true, 10),
			requested: 5,
			available: true,
		},
		{
			name:      "exact_stock_is_available",
			snap:      snap(true, true, 5),
			requested: 5,
			available: true,
		},
		{
			name:      "nil_snapshot_is_sku_offline",
			snap:      nil,
			requested: 1,
			reason:    cart.ReasonSkuOffline,
		},
		{
			name:      "sku_inactive",
			snap:      snap(false, true, 10),
			requested: 1,
			reason:    cart.ReasonSkuOffline,
		},
		{
			name:      "product_inactive",
			snap:      snap(true, false, 10),
			requested: 1,
			reason:    cart.ReasonProductOffline,
		},
		{
			name:      "zero_stock",
			snap:      snap(true, true, 0),
			requested: 1,
			reason:    cart.ReasonOutOfStock,
		},
		{
			name:      "insufficient_stock",
			snap:      snap(true, true, 3),
			requested: 4,
			reason:    cart.ReasonInsufficientStock,
		},
		// offline wins over every stock state
		{
			name:      "sku_inactive_with_zero_stock",
			snap:      snap(false, true, 0),
			requested: 1,
			reason:    cart.ReasonSkuOffline,
		},
		{
			name:      "sku_inactive_beats_product_inactive",
			snap:      snap(false, false, 0),
			requested: 1,
			reason:    cart.ReasonSkuOffline,
		},
		{
			name:      "product_inactive_with_insufficient_stock",
			snap:      snap(true, false, 1),
			requested: 5,
			reason:    cart.ReasonProductOffline,
		},
		{
			name:      "zero_stock_beats_insufficient",
			snap:      snap(true, true, 0),
			requested: 100,
			reason:    cart.ReasonOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := cart.EvaluateAvailability(tt.snap, tt.requested)
			assert.Equal(t, tt.available, verdict.Available)
			assert.Equal(t, tt.reason, verdict.Reason)
		})
	}
}
