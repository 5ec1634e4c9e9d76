package cart

import (
	"time"

	"github.com/google/uuid"
)

// MaxQuantity caps a single cart line; the merge path enforces it on
// the merged total, not just the increment.
const MaxQuantity int32 = 999

// Item is one (user, SKU) cart line. It carries no catalog state:
// price, stock and active flags are resolved live on every read.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SkuID     uuid.UUID
	Quantity  int32
	Checked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
