package cart

import (
	"go-wemall-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("", handler.List)
		carts.GET("/count", handler.Count)
		carts.GET("/statistics", handler.Statistics)
		carts.POST("/validate", handler.Validate)
		carts.POST("/batch", handler.BatchOperate)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("/:itemId", handler.UpdateItem)
			items.DELETE("/:itemId", handler.DeleteItem)
		}
	}
}
