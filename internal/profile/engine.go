// Package profile computes the customer-360 view: one derived profile per
// customer, recomputed in full from the closed order and review facts.
package profile

import (
	"fmt"
	"sort"
	"time"

	"spiceroute-datagen/internal/domain"
	"spiceroute-datagen/internal/enrich"
)

// VIPSpendThreshold is shared by the Platinum tier bound and the is_vip flag
// so the two can never diverge.
const VIPSpendThreshold = 5000.0

const (
	goldSpendThreshold   = 2000.0
	silverSpendThreshold = 500.0
)

// IntegrityError marks a fact whose foreign key references an unknown entity.
// Such facts abort the aggregation; dropping them silently would corrupt the
// rollups invisibly.
type IntegrityError struct {
	FactKind string
	FactID   string
	Field    string
	Ref      string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %s references unknown %s %q", e.FactKind, e.FactID, e.Field, e.Ref)
}

// Input is the closed fact set the engine aggregates over. Annotations are
// optional opaque enrichments keyed by review id; the engine carries them but
// never interprets them.
type Input struct {
	Customers   []domain.Customer
	Restaurants []domain.Restaurant
	Orders      []domain.Order
	Reviews     []domain.Review
	Annotations map[string]enrich.Annotation
}

type orderStats struct {
	totalOrders   int
	lifetimeSpend float64
	lastOrder     time.Time
}

type reviewStats struct {
	totalReviews int
	ratingSum    int
}

// BuildProfiles derives one profile per customer, including customers with no
// activity. The computation is deterministic: identical inputs yield identical
// profiles, tie-breaks included.
func BuildProfiles(in Input) ([]domain.CustomerProfile, error) {
	customerIDs := make(map[string]struct{}, len(in.Customers))
	for _, c := range in.Customers {
		customerIDs[c.ID] = struct{}{}
	}
	restaurantNames := make(map[string]string, len(in.Restaurants))
	for _, r := range in.Restaurants {
		restaurantNames[r.ID] = r.Name
	}
	orderIDs := make(map[string]struct{}, len(in.Orders))
	for _, o := range in.Orders {
		orderIDs[o.ID] = struct{}{}
	}

	if err := checkIntegrity(in, customerIDs, restaurantNames, orderIDs); err != nil {
		return nil, err
	}

	// Step 1: order rollup per customer.
	orderRollup := make(map[string]*orderStats)
	for _, o := range in.Orders {
		st := orderRollup[o.CustomerID]
		if st == nil {
			st = &orderStats{}
			orderRollup[o.CustomerID] = st
		}
		st.totalOrders++
		st.lifetimeSpend += o.TotalAmount
		if o.Timestamp.After(st.lastOrder) {
			st.lastOrder = o.Timestamp
		}
	}

	// Step 2: review rollup per customer.
	reviewRollup := make(map[string]*reviewStats)
	for _, r := range in.Reviews {
		st := reviewRollup[r.CustomerID]
		if st == nil {
			st = &reviewStats{}
			reviewRollup[r.CustomerID] = st
		}
		st.totalReviews++
		st.ratingSum += r.Rating
	}

	// Steps 3 and 4: favorites with deterministic tie-breaks.
	favRestaurant := favoriteRestaurants(in.Orders, restaurantNames)
	favItem := favoriteItems(in.Orders)

	// Step 5: left-join everything onto the full customer list.
	profiles := make([]domain.CustomerProfile, 0, len(in.Customers))
	for _, c := range in.Customers {
		p := domain.CustomerProfile{
			CustomerID: c.ID,
			Name:       c.Name,
			Email:      c.Email,
			City:       c.City,
			JoinDate:   c.JoinDate,
		}

		if st := orderRollup[c.ID]; st != nil {
			p.TotalOrders = st.totalOrders
			p.LifetimeSpend = domain.Round2(st.lifetimeSpend)
			p.AvgOrderValue = domain.Round2(st.lifetimeSpend / float64(st.totalOrders))
			last := st.lastOrder
			p.LastOrderDate = &last
		}
		if st := reviewRollup[c.ID]; st != nil {
			p.TotalReviews = st.totalReviews
			p.AvgRatingGiven = domain.Round2(float64(st.ratingSum) / float64(st.totalReviews))
		}
		if name, ok := favRestaurant[c.ID]; ok {
			p.FavoriteRestaurant = &name
		}
		if name, ok := favItem[c.ID]; ok {
			p.FavoriteItem = &name
		}

		// Tier and vip both evaluate the coalesced spend, so a customer
		// with zero orders is Bronze and never null-tier.
		p.LoyaltyTier = tierFor(p.LifetimeSpend)
		p.IsVIP = p.LifetimeSpend >= VIPSpendThreshold

		profiles = append(profiles, p)
	}
	return profiles, nil
}

func checkIntegrity(in Input, customers map[string]struct{}, restaurants map[string]string, orders map[string]struct{}) error {
	for _, o := range in.Orders {
		if _, ok := customers[o.CustomerID]; !ok {
			return &IntegrityError{FactKind: "order", FactID: o.ID, Field: "customer", Ref: o.CustomerID}
		}
		if _, ok := restaurants[o.RestaurantID]; !ok {
			return &IntegrityError{FactKind: "order", FactID: o.ID, Field: "restaurant", Ref: o.RestaurantID}
		}
	}
	reviewIDs := make(map[string]struct{}, len(in.Reviews))
	for _, r := range in.Reviews {
		if _, ok := customers[r.CustomerID]; !ok {
			return &IntegrityError{FactKind: "review", FactID: r.ID, Field: "customer", Ref: r.CustomerID}
		}
		if _, ok := restaurants[r.RestaurantID]; !ok {
			return &IntegrityError{FactKind: "review", FactID: r.ID, Field: "restaurant", Ref: r.RestaurantID}
		}
		if _, ok := orders[r.OrderID]; !ok {
			return &IntegrityError{FactKind: "review", FactID: r.ID, Field: "order", Ref: r.OrderID}
		}
		reviewIDs[r.ID] = struct{}{}
	}
	for reviewID := range in.Annotations {
		if _, ok := reviewIDs[reviewID]; !ok {
			return &IntegrityError{FactKind: "annotation", FactID: reviewID, Field: "review", Ref: reviewID}
		}
	}
	return nil
}

// favoriteRestaurants ranks restaurants per customer by distinct order count,
// ties broken by lowest restaurant id, and resolves the winner to its name.
func favoriteRestaurants(orders []domain.Order, names map[string]string) map[string]string {
	counts := make(map[string]map[string]int)
	for _, o := range orders {
		if counts[o.CustomerID] == nil {
			counts[o.CustomerID] = make(map[string]int)
		}
		counts[o.CustomerID][o.RestaurantID]++
	}

	winners := make(map[string]string, len(counts))
	for customerID, perRestaurant := range counts {
		winners[customerID] = names[topKey(perRestaurant)]
	}
	return winners
}

// favoriteItems ranks item names per customer by total quantity, ties broken
// by lexicographically smallest name.
func favoriteItems(orders []domain.Order) map[string]string {
	quantities := make(map[string]map[string]int)
	for _, o := range orders {
		if quantities[o.CustomerID] == nil {
			quantities[o.CustomerID] = make(map[string]int)
		}
		for _, line := range o.Items {
			quantities[o.CustomerID][line.Name] += line.Quantity
		}
	}

	winners := make(map[string]string, len(quantities))
	for customerID, perItem := range quantities {
		winners[customerID] = topKey(perItem)
	}
	return winners
}

// topKey selects the key with the highest count; ties resolve to the smallest
// key so the pick is stable across runs regardless of map iteration order.
func topKey(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best
}

func tierFor(spend float64) domain.LoyaltyTier {
	switch {
	case spend >= VIPSpendThreshold:
		return domain.TierPlatinum
	case spend >= goldSpendThreshold:
		return domain.TierGold
	case spend >= silverSpendThreshold:
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}
