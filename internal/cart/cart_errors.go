package cart

import (
	"fmt"
	"net/http"

	"go-wemall-api/internal/pkg/apperror"
)

const (
	CodeSkuOffline        = "SKU_OFFLINE"
	CodeProductOffline    = "PRODUCT_OFFLINE"
	CodeOutOfStock        = "OUT_OF_STOCK"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be between 1 and 999",
		http.StatusBadRequest,
	)

	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one of quantity or checked must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidCartItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item ID",
		http.StatusBadRequest,
	)

	ErrInvalidBatchAction = apperror.New(
		apperror.CodeInvalidInput,
		"Batch action must be one of delete, check, uncheck",
		http.StatusBadRequest,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrSkuOffline = apperror.New(
		CodeSkuOffline,
		"SKU is offline or does not exist",
		http.StatusBadRequest,
	)

	ErrProductOffline = apperror.New(
		CodeProductOffline,
		"Product is offline",
		http.StatusBadRequest,
	)

	ErrOutOfStock = apperror.New(
		CodeOutOfStock,
		"SKU is out of stock",
		http.StatusConflict,
	)

	ErrInsufficientStock = apperror.New(
		CodeInsufficientStock,
		"Insufficient stock",
		http.StatusConflict,
	)
)

// NewInsufficientStock keeps errors.Is(err, ErrInsufficientStock)
// matching while carrying the current stock for the caller's message.
func NewInsufficientStock(currentStock int32) *apperror.AppError {
	return ErrInsufficientStock.
		WithMessage(fmt.Sprintf("Insufficient stock, current stock: %d", currentStock)).
		WithDetails(map[string]int32{"currentStock": currentStock})
}
