package catalog

// ==================== REQUEST STRUCTS ====================

type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

type CreateSkuRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Price     string `json:"price" validate:"required"`
	Stock     int32  `json:"stock" validate:"min=0"`
	IsActive  *bool  `json:"isActive"`
}

type UpdateSkuRequest struct {
	Price    *string `json:"price"`
	Stock    *int32  `json:"stock" validate:"omitempty,min=0"`
	IsActive *bool   `json:"isActive"`
}

// ==================== RESPONSE STRUCTS ====================

type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type SkuResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Stock     int32  `json:"stock"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type SkuDetailResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	ProductActive bool   `json:"productActive"`
	Price         string `json:"price"`
	Stock         int32  `json:"stock"`
	IsActive      bool   `json:"isActive"`
}
