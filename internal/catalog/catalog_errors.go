package catalog

import (
	"net/http"

	"go-wemall-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrInvalidSkuID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid SKU ID",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrSkuNotFound = apperror.New(
		apperror.CodeNotFound,
		"SKU not found",
		http.StatusNotFound,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid price",
		http.StatusBadRequest,
	)
)
