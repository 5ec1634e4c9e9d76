package consumer

import (
	"context"
	"log"

	"go-wemall-api/internal/cart"

	"github.com/segmentio/kafka-go"
)

const eventOrderCompleted = "ORDER_COMPLETED"

// ConsumeMessages handles order lifecycle events from the checkout
// service. Completed orders clear the checked cart lines of the buyer.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == eventOrderCompleted {
			if err := handleOrderCompleted(ctx, msg.Value, cartService); err != nil {
				log.Printf("[CONSUMER] Error handling %s: %v", eventOrderCompleted, err)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}
