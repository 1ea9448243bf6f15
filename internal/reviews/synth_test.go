package reviews

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spiceroute-datagen/internal/domain"
)

func TestFormatDishes(t *testing.T) {
	tests := []struct {
		name   string
		dishes []string
		want   string
	}{
		{"single", []string{"Naan"}, "Naan"},
		{"pair", []string{"Naan", "Kulfi"}, "Naan and Kulfi"},
		{"three", []string{"Naan", "Butter Chicken", "Kulfi"}, "Naan, Butter Chicken, and Kulfi"},
		{"duplicate lines kept", []string{"Naan", "Butter Chicken", "Naan"}, "Naan, Butter Chicken, and Naan"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, FormatDishes(testCase.dishes))
		})
	}
}

func TestRenderText_StripsCommas(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	dishes := []string{"Naan", "Butter Chicken", "Naan"}

	for i := 0; i < 50; i++ {
		text := renderText(rng, 1+rng.Intn(5), dishes)
		assert.NotContains(t, text, ",", "rendered review text must be comma-free")
		// the conjoined list survives with commas replaced by spaces
		assert.Contains(t, text, "Naan  Butter Chicken  and Naan")
	}
}

func TestSampleRating_MatchesDeclaredWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const n = 10000

	counts := map[int]int{}
	for i := 0; i < n; i++ {
		r := SampleRating(rng)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 5)
		counts[r]++
	}

	expected := map[int]float64{5: 0.50, 4: 0.25, 3: 0.12, 2: 0.08, 1: 0.05}
	for rating, want := range expected {
		got := float64(counts[rating]) / n
		assert.LessOrEqualf(t, math.Abs(got-want), 0.02,
			"rating %d frequency %.4f deviates more than 2pp from %.2f", rating, got, want)
	}
}

func sampleOrder(id int, ts time.Time) domain.Order {
	return domain.Order{
		ID:           fmt.Sprintf("ORD-20260101-%06d", id),
		Timestamp:    ts,
		RestaurantID: "REST-DXB-001",
		CustomerID:   "CUST-10001",
		Items: []domain.OrderLine{
			{ItemID: "ITEM-401", Name: "Naan", Category: "Bread", Quantity: 2, UnitPrice: 8.12, Subtotal: 16.24},
			{ItemID: "ITEM-301", Name: "Butter Chicken", Category: "Main Course", Quantity: 1, UnitPrice: 51.30, Subtotal: 51.30},
		},
		TotalAmount: 67.54,
	}
}

func TestFromOrders_Invariants(t *testing.T) {
	base := time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC)
	orders := make([]domain.Order, 0, 400)
	for i := 0; i < 400; i++ {
		orders = append(orders, sampleOrder(i, base.Add(time.Duration(i)*time.Hour)))
	}

	rng := rand.New(rand.NewSource(31))
	reviews := FromOrders(rng, orders, 0.35)

	require.NotEmpty(t, reviews)
	assert.Less(t, len(reviews), len(orders), "coverage sampling must not review every order")

	byOrder := map[string]domain.Order{}
	for _, o := range orders {
		byOrder[o.ID] = o
	}

	for i, r := range reviews {
		assert.Equal(t, fmt.Sprintf("REV-%06d", i+1), r.ID, "review ids are sequential and zero-padded")

		order := byOrder[r.OrderID]
		assert.Equal(t, order.CustomerID, r.CustomerID)
		assert.Equal(t, order.RestaurantID, r.RestaurantID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)

		offset := r.Timestamp.Sub(order.Timestamp)
		assert.GreaterOrEqual(t, offset, 24*time.Hour)
		assert.LessOrEqual(t, offset, 7*24*time.Hour)

		if i > 0 {
			assert.False(t, r.Timestamp.Before(reviews[i-1].Timestamp), "reviews must be sorted by timestamp")
		}
	}
}

func TestFromOrders_IDsAssignedByEmissionOrder(t *testing.T) {
	// A later order with a short review delay can sort before an earlier
	// order's review; ids follow emission order, not final sort order.
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{sampleOrder(1, base), sampleOrder(2, base.Add(time.Minute))}

	rng := rand.New(rand.NewSource(8))
	reviews := FromOrders(rng, orders, 1.0)

	require.Len(t, reviews, 2)
	ids := map[string]bool{reviews[0].ID: true, reviews[1].ID: true}
	assert.True(t, ids["REV-000001"])
	assert.True(t, ids["REV-000002"])
}

func TestRenderText_CoversEveryBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for rating := 1; rating <= 5; rating++ {
		require.NotEmpty(t, reviewTemplates[rating])
		text := renderText(rng, rating, []string{"Kulfi"})
		assert.NotEmpty(t, text)
		assert.False(t, strings.Contains(text, "{dishes}") || strings.Contains(text, "{highlight}"),
			"all template slots must be filled")
	}
}
