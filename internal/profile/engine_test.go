package profile

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spiceroute-datagen/internal/catalog"
	"spiceroute-datagen/internal/domain"
	"spiceroute-datagen/internal/enrich"
	"spiceroute-datagen/internal/orders"
	"spiceroute-datagen/internal/reviews"
)

var (
	testCustomers = []domain.Customer{
		{ID: "CUST-10000", Name: "Amira Hassan", Email: "amira@example.com", City: "Dubai"},
		{ID: "CUST-10001", Name: "Omar Khalid", Email: "omar@example.com", City: "Sharjah"},
	}
	testRestaurants = []domain.Restaurant{
		{ID: "REST-AUH-001", Name: "Spice Route Downtown"},
		{ID: "REST-DXB-001", Name: "Spice Route Marina"},
	}
)

func order(id, customerID, restaurantID string, total float64, ts time.Time, items ...domain.OrderLine) domain.Order {
	return domain.Order{
		ID:           id,
		Timestamp:    ts,
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		Items:        items,
		TotalAmount:  total,
	}
}

func TestBuildProfiles_ZeroActivityCustomer(t *testing.T) {
	profiles, err := BuildProfiles(Input{
		Customers:   testCustomers,
		Restaurants: testRestaurants,
	})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	for _, p := range profiles {
		assert.Equal(t, 0, p.TotalOrders)
		assert.Equal(t, 0.0, p.LifetimeSpend)
		assert.Equal(t, 0.0, p.AvgOrderValue)
		assert.Nil(t, p.LastOrderDate)
		assert.Equal(t, domain.TierBronze, p.LoyaltyTier)
		assert.Nil(t, p.FavoriteRestaurant)
		assert.Nil(t, p.FavoriteItem)
		assert.Equal(t, 0, p.TotalReviews)
		assert.Equal(t, 0.0, p.AvgRatingGiven)
		assert.False(t, p.IsVIP)
	}
}

func TestBuildProfiles_SpendTiersAndVIP(t *testing.T) {
	ts := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)

	profiles, err := BuildProfiles(Input{
		Customers:   testCustomers,
		Restaurants: testRestaurants,
		Orders: []domain.Order{
			order("ORD-20260401-000001", "CUST-10000", "REST-AUH-001", 3000.00, ts),
			order("ORD-20260402-000002", "CUST-10000", "REST-AUH-001", 2500.00, ts.AddDate(0, 0, 1)),
			order("ORD-20260403-000003", "CUST-10001", "REST-DXB-001", 650.00, ts),
		},
	})
	require.NoError(t, err)

	byID := map[string]domain.CustomerProfile{}
	for _, p := range profiles {
		byID[p.CustomerID] = p
	}

	vip := byID["CUST-10000"]
	assert.Equal(t, 2, vip.TotalOrders)
	assert.Equal(t, 5500.00, vip.LifetimeSpend)
	assert.Equal(t, 2750.00, vip.AvgOrderValue)
	assert.Equal(t, domain.TierPlatinum, vip.LoyaltyTier)
	assert.True(t, vip.IsVIP)
	require.NotNil(t, vip.LastOrderDate)
	assert.Equal(t, ts.AddDate(0, 0, 1), *vip.LastOrderDate)

	silver := byID["CUST-10001"]
	assert.Equal(t, domain.TierSilver, silver.LoyaltyTier)
	assert.False(t, silver.IsVIP)
}

func TestBuildProfiles_FavoriteTieBreaks(t *testing.T) {
	ts := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	naan := domain.OrderLine{ItemID: "ITEM-401", Name: "Naan", Quantity: 2, UnitPrice: 8, Subtotal: 16}
	kulfi := domain.OrderLine{ItemID: "ITEM-503", Name: "Kulfi", Quantity: 2, UnitPrice: 20, Subtotal: 40}

	// One order at each restaurant, equal item quantities: both favorites tie.
	profiles, err := BuildProfiles(Input{
		Customers:   testCustomers[:1],
		Restaurants: testRestaurants,
		Orders: []domain.Order{
			order("ORD-20260401-000010", "CUST-10000", "REST-DXB-001", 56.00, ts, naan),
			order("ORD-20260401-000011", "CUST-10000", "REST-AUH-001", 56.00, ts.Add(time.Hour), kulfi),
		},
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	// lowest restaurant id wins, resolved to its name
	require.NotNil(t, profiles[0].FavoriteRestaurant)
	assert.Equal(t, "Spice Route Downtown", *profiles[0].FavoriteRestaurant)

	// lexicographically smallest item name wins
	require.NotNil(t, profiles[0].FavoriteItem)
	assert.Equal(t, "Kulfi", *profiles[0].FavoriteItem)
}

func TestBuildProfiles_ReviewRollup(t *testing.T) {
	ts := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	o := order("ORD-20260401-000020", "CUST-10000", "REST-AUH-001", 100.00, ts)

	profiles, err := BuildProfiles(Input{
		Customers:   testCustomers[:1],
		Restaurants: testRestaurants,
		Orders:      []domain.Order{o},
		Reviews: []domain.Review{
			{ID: "REV-000001", OrderID: o.ID, CustomerID: "CUST-10000", RestaurantID: "REST-AUH-001", Rating: 5},
			{ID: "REV-000002", OrderID: o.ID, CustomerID: "CUST-10000", RestaurantID: "REST-AUH-001", Rating: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, profiles[0].TotalReviews)
	assert.Equal(t, 4.5, profiles[0].AvgRatingGiven)
}

func TestBuildProfiles_IntegrityFaults(t *testing.T) {
	ts := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	valid := order("ORD-20260401-000030", "CUST-10000", "REST-AUH-001", 50.00, ts)

	tests := []struct {
		name  string
		input Input
	}{
		{
			name: "order with unknown customer",
			input: Input{
				Customers:   testCustomers,
				Restaurants: testRestaurants,
				Orders:      []domain.Order{order("ORD-20260401-000031", "CUST-99999", "REST-AUH-001", 10, ts)},
			},
		},
		{
			name: "order with unknown restaurant",
			input: Input{
				Customers:   testCustomers,
				Restaurants: testRestaurants,
				Orders:      []domain.Order{order("ORD-20260401-000032", "CUST-10000", "REST-XXX-999", 10, ts)},
			},
		},
		{
			name: "review with unknown order",
			input: Input{
				Customers:   testCustomers,
				Restaurants: testRestaurants,
				Orders:      []domain.Order{valid},
				Reviews: []domain.Review{
					{ID: "REV-000001", OrderID: "ORD-00000000-000000", CustomerID: "CUST-10000", RestaurantID: "REST-AUH-001", Rating: 3},
				},
			},
		},
		{
			name: "annotation with unknown review",
			input: Input{
				Customers:   testCustomers,
				Restaurants: testRestaurants,
				Orders:      []domain.Order{valid},
				Annotations: map[string]enrich.Annotation{
					"REV-404404": {Sentiment: enrich.SentimentPositive},
				},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := BuildProfiles(testCase.input)
			require.Error(t, err)

			var integrity *IntegrityError
			assert.ErrorAs(t, err, &integrity)
		})
	}
}

func TestBuildProfiles_DeterministicOverGeneratedData(t *testing.T) {
	c, err := catalog.Build(rand.New(rand.NewSource(55)), 100)
	require.NoError(t, err)

	batch, err := orders.HistoricalBatch(rand.New(rand.NewSource(56)), c, 2000, 6, time.Now())
	require.NoError(t, err)
	revs := reviews.FromOrders(rand.New(rand.NewSource(57)), batch, 0.35)

	in := Input{Customers: c.Customers, Restaurants: c.Restaurants, Orders: batch, Reviews: revs}

	first, err := BuildProfiles(in)
	require.NoError(t, err)
	second, err := BuildProfiles(in)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical profiles, tie-breaks included")

	for _, p := range first {
		assert.Equal(t, p.LoyaltyTier == domain.TierPlatinum, p.IsVIP,
			"is_vip must hold exactly for Platinum profiles")
		if p.TotalOrders == 0 {
			assert.Equal(t, domain.TierBronze, p.LoyaltyTier)
		}
	}
}
