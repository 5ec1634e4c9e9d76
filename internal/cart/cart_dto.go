package cart

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	SkuID    string `json:"skuId" binding:"required"`
	Quantity int32  `json:"quantity" validate:"required,min=1,max=999"`
}

type UpdateItemRequest struct {
	Quantity *int32 `json:"quantity" validate:"omitempty,min=1,max=999"`
	Checked  *bool  `json:"checked"`
}

const (
	ActionDelete  = "delete"
	ActionCheck   = "check"
	ActionUncheck = "uncheck"
)

type BatchOperateRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action" binding:"required,oneof=delete check uncheck"`
}

// ==================== RESPONSE STRUCTS ====================

type CartItemDetailResponse struct {
	ID          string `json:"id"`
	SkuID       string `json:"skuId"`
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName,omitempty"`
	Price       string `json:"price,omitempty"`
	Quantity    int32  `json:"quantity"`
	Checked     bool   `json:"checked"`
	TotalPrice  string `json:"totalPrice,omitempty"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type BatchOperateResponse struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type CartStatisticsResponse struct {
	TotalItems       int64  `json:"totalItems"`
	CheckedItems     int64  `json:"checkedItems"`
	TotalPrice       string `json:"totalPrice"`
	CheckedPrice     string `json:"checkedPrice"`
	AvailableItems   int64  `json:"availableItems"`
	UnavailableItems int64  `json:"unavailableItems"`
}

type InvalidCartItem struct {
	CartID            string `json:"cartId"`
	SkuID             string `json:"skuId"`
	ProductName       string `json:"productName,omitempty"`
	Reason            string `json:"reason"`
	CurrentStock      *int32 `json:"currentStock,omitempty"`
	RequestedQuantity *int32 `json:"requestedQuantity,omitempty"`
}

type CartValidationResponse struct {
	Valid        bool              `json:"valid"`
	InvalidItems []InvalidCartItem `json:"invalidItems"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}

type ClearCartResponse struct {
	Removed int64 `json:"removed"`
}
