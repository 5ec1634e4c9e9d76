package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Sku struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Price     decimal.Decimal
	Stock     int32
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SkuSnapshot is a read-time projection of catalog state. It is never
// persisted next to a cart line; every cart read resolves it fresh so
// price/stock/active changes are visible without touching cart rows.
type SkuSnapshot struct {
	SkuID         uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	Price         decimal.Decimal
	Stock         int32
	SkuActive     bool
	ProductActive bool
}
