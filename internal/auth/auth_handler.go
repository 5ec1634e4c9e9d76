package auth

import (
	"net/http"

	"go-wemall-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Register(ctx, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Login(ctx, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	// cookie for browser clients, token in the body for everything else
	ctx.SetCookie("access_token", res.AccessToken, int(accessTokenTTL.Seconds()), "/", "", false, true)
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.GetMe(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}
