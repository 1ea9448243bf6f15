package reviews

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"spiceroute-datagen/internal/domain"
)

// ratingWeights is the declared categorical distribution for review ratings.
var ratingWeights = []struct {
	rating int
	weight float64
}{
	{5, 0.50},
	{4, 0.25},
	{3, 0.12},
	{2, 0.08},
	{1, 0.05},
}

// SampleRating draws one rating from the weighted distribution with a single
// uniform draw over cumulative weights.
func SampleRating(rng *rand.Rand) int {
	u := rng.Float64()
	cum := 0.0
	for _, rw := range ratingWeights {
		cum += rw.weight
		if u < cum {
			return rw.rating
		}
	}
	// float accumulation can leave u just past the final bound
	return ratingWeights[len(ratingWeights)-1].rating
}

// FormatDishes joins dish names with the "A, B, and C" grammar.
func FormatDishes(dishes []string) string {
	switch len(dishes) {
	case 0:
		return ""
	case 1:
		return dishes[0]
	case 2:
		return dishes[0] + " and " + dishes[1]
	default:
		return strings.Join(dishes[:len(dishes)-1], ", ") + ", and " + dishes[len(dishes)-1]
	}
}

// renderText fills one template for the rating. Literal commas are replaced
// with spaces in the final text; downstream compatibility depends on this
// exact normalization.
func renderText(rng *rand.Rand, rating int, dishes []string) string {
	bucket := reviewTemplates[rating]
	template := bucket[rng.Intn(len(bucket))]
	highlight := dishes[rng.Intn(len(dishes))]

	text := strings.ReplaceAll(template, "{dishes}", FormatDishes(dishes))
	text = strings.ReplaceAll(text, "{highlight}", highlight)
	return strings.ReplaceAll(text, ",", " ")
}

// FromOrders samples reviews from the historical batch: each order is included
// with independent probability coverage, so the realized count is only
// approximately coverage*len(orders). Output is sorted by review timestamp.
func FromOrders(rng *rand.Rand, orders []domain.Order, coverage float64) []domain.Review {
	var reviews []domain.Review
	for _, order := range orders {
		if rng.Float64() > coverage {
			continue
		}

		dishes := make([]string, 0, len(order.Items))
		for _, line := range order.Items {
			dishes = append(dishes, line.Name)
		}

		rating := SampleRating(rng)
		offsetDays := 1 + rng.Intn(7)

		reviews = append(reviews, domain.Review{
			ID:           fmt.Sprintf("REV-%06d", len(reviews)+1),
			OrderID:      order.ID,
			CustomerID:   order.CustomerID,
			RestaurantID: order.RestaurantID,
			Text:         renderText(rng, rating, dishes),
			Rating:       rating,
			Timestamp:    order.Timestamp.AddDate(0, 0, offsetDays),
		})
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Timestamp.Before(reviews[j].Timestamp)
	})
	return reviews
}
