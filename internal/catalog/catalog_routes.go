package catalog

import (
	"go-wemall-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/products", handler.ListProducts)
		catalog.GET("/skus/:skuId", handler.SkuDetail)

		admin := catalog.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
		{
			admin.POST("/products", handler.CreateProduct)
			admin.PATCH("/products/:productId", handler.UpdateProduct)
			admin.POST("/skus", handler.CreateSku)
			admin.PATCH("/skus/:skuId", handler.UpdateSku)
		}
	}
}
