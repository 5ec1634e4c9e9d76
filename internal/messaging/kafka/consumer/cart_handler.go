package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-wemall-api/internal/cart"
)

type orderCompletedPayload struct {
	UserID string `json:"userId"`
}

// handleOrderCompleted removes the lines the buyer had checked for the
// order that just completed; unchecked lines stay in the cart.
func handleOrderCompleted(ctx context.Context, payload []byte, cartService cart.Service) error {
	var data orderCompletedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	removed, err := cartService.ClearCart(ctx, data.UserID, true)
	if err != nil {
		return err
	}

	log.Printf("[CONSUMER] Cleared %d checked cart lines for user %s", removed, data.UserID)
	return nil
}
