package cart

import "go-wemall-api/internal/catalog"

type Reason string

const (
	ReasonSkuOffline        Reason = "sku_offline"
	ReasonProductOffline    Reason = "product_offline"
	ReasonOutOfStock        Reason = "out_of_stock"
	ReasonInsufficientStock Reason = "insufficient_stock"
)

type Availability struct {
	Available bool
	Reason    Reason
}

// EvaluateAvailability derives a cart line's availability from a live
// catalog snapshot. The check order is a contract: offline states win
// over stock states, so a disabled SKU with zero stock reports
// sku_offline, never out_of_stock. A nil snapshot means the SKU was
// purged from the catalog and counts as offline.
func EvaluateAvailability(snap *catalog.SkuSnapshot, requested int32) Availability {
	switch {
	case snap == nil || !snap.SkuActive:
		return Availability{Reason: ReasonSkuOffline}
	case !snap.ProductActive:
		return Availability{Reason: ReasonProductOffline}
	case snap.Stock == 0:
		return Availability{Reason: ReasonOutOfStock}
	case snap.Stock < requested:
		return Availability{Reason: ReasonInsufficientStock}
	default:
		return Availability{Available: true}
	}
}
