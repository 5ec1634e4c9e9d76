package cart

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

func (h *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.AddItem(ctx, userID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) UpdateItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateItem(ctx, userID, ctx.Param("itemId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	deleted, err := h.service.DeleteItem(ctx, userID, ctx.Param("itemId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) BatchOperate(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req BatchOperateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.BatchOperate(ctx, userID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	checkedOnly := ctx.Query("checkedOnly") == "true"

	removed, err := h.service.ClearCart(ctx, userID, checkedOnly)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, ClearCartResponse{Removed: removed})
}

func (h *Handler) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var checked *bool
	if raw, ok := ctx.GetQuery("checked"); ok {
		val := raw == "true"
		checked = &val
	}

	items, total, err := h.service.List(ctx, userID, checked, page, limit)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.SuccessWithPagination(ctx, http.StatusOK, items, response.NewPagination(page, limit, total))
}

func (h *Handler) Statistics(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Statistics(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Validate(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req struct {
		CartIDs []string `json:"cartIds"`
	}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
			return
		}
	}

	res, err := h.service.Validate(ctx, userID, req.CartIDs)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Count(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	count, err := h.service.Count(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, CartCountResponse{Count: count})
}
