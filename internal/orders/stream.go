package orders

import (
	"context"
	"log"
	"math/rand"
	"time"

	"spiceroute-datagen/internal/catalog"
	"spiceroute-datagen/internal/domain"
)

// OrderSink receives each live emission. Implementations deliver to the
// streaming transport; delivery is at-least-once from the consumer's view.
type OrderSink interface {
	Deliver(ctx context.Context, order domain.Order) error
}

// Streamer is the live order simulator: a single timed producer loop that
// synthesizes one full-lifecycle order per tick and hands it to the sink.
type Streamer struct {
	Catalog  *catalog.Catalog
	Sink     OrderSink
	Interval time.Duration
	// MaxOrders bounds the run when > 0; otherwise the loop runs until the
	// context is cancelled.
	MaxOrders int

	rng *rand.Rand
	now func() time.Time
}

func NewStreamer(rng *rand.Rand, c *catalog.Catalog, sink OrderSink, interval time.Duration, maxOrders int) *Streamer {
	return &Streamer{
		Catalog:   c,
		Sink:      sink,
		Interval:  interval,
		MaxOrders: maxOrders,
		rng:       rng,
		now:       time.Now,
	}
}

// Run emits until cancellation or the optional max-count bound. A failed
// delivery is logged and the loop continues; only a cancelled context stops
// it early. Returns the number of orders emitted.
func (s *Streamer) Run(ctx context.Context) (int, error) {
	log.Printf("Starting live order stream (interval=%s, max=%d)", s.Interval, s.MaxOrders)

	emitted := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Printf("Live order stream stopped after %d orders: %v", emitted, err)
			return emitted, err
		}

		order, err := draftOrder(s.rng, s.now().UTC(), s.Catalog, LiveStatuses)
		if err != nil {
			// Only a broken catalog gets here; not recoverable.
			return emitted, err
		}

		if err := s.Sink.Deliver(ctx, order); err != nil {
			log.Printf("Error delivering order %s: %v", order.ID, err)
		} else {
			emitted++
			log.Printf("[%d] %s | %s | AED %.2f | %s",
				emitted, order.ID, order.RestaurantID, order.TotalAmount, order.Status)
		}

		if s.MaxOrders > 0 && emitted >= s.MaxOrders {
			return emitted, nil
		}

		select {
		case <-ctx.Done():
			log.Printf("Live order stream stopped after %d orders: %v", emitted, ctx.Err())
			return emitted, ctx.Err()
		case <-time.After(s.Interval):
		}
	}
}
