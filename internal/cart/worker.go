package cart

import (
	"context"
	"log"
	"time"
)

// StartExpiryWorker deletes carts abandoned for longer than ttl.
// Runs until the context is cancelled.
func StartExpiryWorker(ctx context.Context, backend Backend, ttl, interval time.Duration) {
	go func() {
		log.Println("cart expiry worker started")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("cart expiry worker stopped")
				return
			case <-ticker.C:
				removed, err := backend.DeleteIdle(ctx, ttl)
				if err != nil {
					log.Println("cart expiry sweep failed:", err)
					continue
				}
				if removed > 0 {
					log.Printf("cart expiry sweep removed %d abandoned cart(s)", removed)
				}
			}
		}
	}()
}
