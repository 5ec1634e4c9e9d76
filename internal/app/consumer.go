package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-wemall-api/internal/cart"
	"go-wemall-api/internal/catalog"
	"go-wemall-api/internal/messaging/kafka/consumer"
	"go-wemall-api/internal/outbox"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer starts the order-events consumer that cleans up checked
// cart lines after a checkout completes elsewhere.
func RunConsumer(logger *zap.Logger) error {
	log.Println("[CONSUMER] Starting cart consumer...")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	catalogService := catalog.NewService(catalog.Deps{
		DB:         db,
		Repo:       catalog.NewRepository(db),
		OutboxRepo: outbox.NewRepository(db),
		Logger:     logger,
	})
	cartService := cart.NewService(cart.Deps{
		DB:      db,
		Repo:    cart.NewRepository(db),
		Catalog: catalogService,
		Logger:  logger,
	})

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
