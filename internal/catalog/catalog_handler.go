package catalog

import (
	"net/http"
	"strconv"

	"go-wemall-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateProduct(ctx *gin.Context) {
	var req CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.CreateProduct(ctx, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) UpdateProduct(ctx *gin.Context) {
	var req UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateProduct(ctx, ctx.Param("productId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) ListProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	res, total, err := h.service.ListProducts(ctx, page, limit)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.SuccessWithPagination(ctx, http.StatusOK, res, response.NewPagination(page, limit, total))
}

func (h *Handler) CreateSku(ctx *gin.Context) {
	var req CreateSkuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.CreateSku(ctx, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) UpdateSku(ctx *gin.Context) {
	var req UpdateSkuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateSku(ctx, ctx.Param("skuId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) SkuDetail(ctx *gin.Context) {
	res, err := h.service.SkuDetail(ctx, ctx.Param("skuId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}
