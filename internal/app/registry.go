package app

import (
	"database/sql"

	"go-wemall-api/internal/auth"
	"go-wemall-api/internal/cart"
	"go-wemall-api/internal/catalog"
	"go-wemall-api/internal/middleware"
	"go-wemall-api/internal/outbox"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	catalogService := catalog.NewService(catalog.Deps{
		DB:         db,
		Repo:       catalogRepo,
		OutboxRepo: outboxRepo,
		Cache:      redisClient,
		Logger:     logger,
	})
	cartService := cart.NewService(cart.Deps{
		DB:      db,
		Repo:    cartRepo,
		Catalog: catalogService,
		Logger:  logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
	}
}
