package orders

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"spiceroute-datagen/internal/catalog"
	"spiceroute-datagen/internal/domain"
)

var (
	ErrNoOfferings      = errors.New("restaurant has no offerings to sample from")
	ErrIDSpaceExhausted = errors.New("could not draw a unique order id")
)

// HistoricalStatuses are the terminal states used for the batch corpus.
var HistoricalStatuses = []domain.OrderStatus{
	domain.StatusDelivered,
	domain.StatusCompleted,
}

// LiveStatuses span the full order lifecycle; the live simulator draws each
// emission independently rather than walking a state machine.
var LiveStatuses = []domain.OrderStatus{
	domain.StatusPending,
	domain.StatusConfirmed,
	domain.StatusPreparing,
	domain.StatusReady,
	domain.StatusDelivered,
}

var channels = []domain.OrderChannel{
	domain.ChannelDineIn,
	domain.ChannelTakeaway,
	domain.ChannelDelivery,
}

var paymentMethods = []domain.PaymentMethod{
	domain.PaymentCash,
	domain.PaymentCard,
	domain.PaymentWallet,
}

const (
	maxDistinctItems = 5
	minQuantity      = 1
	maxQuantity      = 3

	// service window for historical timestamps
	openingHour = 10
	closingHour = 22

	idRedrawAttempts = 10
)

// draftOrder is the shared core for both modes: one restaurant and one
// customer uniformly at random, 1..min(5, menu size) distinct offerings
// without replacement, quantity 1..3 per line.
func draftOrder(rng *rand.Rand, at time.Time, c *catalog.Catalog, statuses []domain.OrderStatus) (domain.Order, error) {
	restaurant := c.Restaurants[rng.Intn(len(c.Restaurants))]
	customer := c.Customers[rng.Intn(len(c.Customers))]

	offerings := c.MenuByRestaurant[restaurant.ID]
	if len(offerings) == 0 {
		return domain.Order{}, fmt.Errorf("draft order for %s: %w", restaurant.ID, ErrNoOfferings)
	}

	k := len(offerings)
	if k > maxDistinctItems {
		k = maxDistinctItems
	}
	numItems := 1 + rng.Intn(k)

	items := make([]domain.OrderLine, 0, numItems)
	total := 0.0
	for _, idx := range rng.Perm(len(offerings))[:numItems] {
		offering := offerings[idx]
		quantity := minQuantity + rng.Intn(maxQuantity-minQuantity+1)
		subtotal := domain.Round2(offering.Price * float64(quantity))
		total += subtotal
		items = append(items, domain.OrderLine{
			ItemID:    offering.ItemID,
			Name:      offering.Name,
			Category:  offering.Category,
			Quantity:  quantity,
			UnitPrice: offering.Price,
			Subtotal:  subtotal,
		})
	}

	return domain.Order{
		ID:            newOrderID(rng, at),
		Timestamp:     at,
		RestaurantID:  restaurant.ID,
		CustomerID:    customer.ID,
		Channel:       channels[rng.Intn(len(channels))],
		Items:         items,
		TotalAmount:   domain.Round2(total),
		PaymentMethod: paymentMethods[rng.Intn(len(paymentMethods))],
		Status:        statuses[rng.Intn(len(statuses))],
		CreatedAt:     at,
	}, nil
}

// newOrderID encodes the order date plus a random 6-digit suffix. The suffix
// is not collision-free; batch generation dedupes, the stream tolerates it.
func newOrderID(rng *rand.Rand, at time.Time) string {
	suffix := 100000 + rng.Intn(900000)
	return fmt.Sprintf("ORD-%s-%d", at.Format("20060102"), suffix)
}

// HistoricalBatch materializes n terminal-status orders over the monthsBack
// window trailing end, time-sorted ascending. Timestamps land inside the
// 10:00-22:59 service window with random minute and second. The window anchor
// is explicit so a fixed seed reproduces the batch exactly.
func HistoricalBatch(rng *rand.Rand, c *catalog.Catalog, n, monthsBack int, end time.Time) ([]domain.Order, error) {
	start := end.AddDate(0, 0, -monthsBack*30)
	spanDays := int(end.Sub(start).Hours() / 24)

	seen := make(map[string]struct{}, n)
	batch := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, rng.Intn(spanDays+1))
		at := time.Date(day.Year(), day.Month(), day.Day(),
			openingHour+rng.Intn(closingHour-openingHour+1),
			rng.Intn(60), rng.Intn(60), 0, day.Location())

		order, err := draftOrder(rng, at, c, HistoricalStatuses)
		if err != nil {
			return nil, err
		}
		if err := dedupeID(rng, &order, seen); err != nil {
			return nil, err
		}
		seen[order.ID] = struct{}{}
		batch = append(batch, order)
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Timestamp.Before(batch[j].Timestamp)
	})
	return batch, nil
}

// dedupeID redraws the random suffix on the rare same-day collision.
func dedupeID(rng *rand.Rand, order *domain.Order, seen map[string]struct{}) error {
	for attempt := 0; attempt < idRedrawAttempts; attempt++ {
		if _, dup := seen[order.ID]; !dup {
			return nil
		}
		order.ID = newOrderID(rng, order.Timestamp)
	}
	return fmt.Errorf("order id %s: %w", order.ID, ErrIDSpaceExhausted)
}
