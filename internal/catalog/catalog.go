package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"spiceroute-datagen/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
)

var ErrEmptyMenu = errors.New("restaurant has no menu offerings")

// CustomerCities is where customers live; it deliberately includes a city with
// no location (Ajman) since customers order across cities.
var CustomerCities = []string{"Abu Dhabi", "Dubai", "Sharjah", "Ajman"}

const customerIDBase = 10000

// Catalog holds the reference sets for one generation run. It is built once,
// passed by reference into every generator call, and never mutated afterwards.
type Catalog struct {
	Restaurants      []domain.Restaurant
	MenuByRestaurant map[string][]domain.MenuOffering
	Customers        []domain.Customer
}

// Build assembles the full catalog and checks the offering invariant every
// downstream sampler relies on.
func Build(rng *rand.Rand, customers int) (*Catalog, error) {
	c := &Catalog{
		Restaurants:      BuildRestaurants(),
		MenuByRestaurant: BuildMenu(rng),
		Customers:        BuildCustomers(rng, customers),
	}
	for _, r := range c.Restaurants {
		if len(c.MenuByRestaurant[r.ID]) == 0 {
			return nil, fmt.Errorf("catalog for %s: %w", r.ID, ErrEmptyMenu)
		}
	}
	return c, nil
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// BuildRestaurants returns the fixed location list with deterministic ids.
func BuildRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:          "REST-AUH-001",
			Name:        "Spice Route Downtown",
			City:        "Abu Dhabi",
			Country:     "UAE",
			Address:     "Corniche Road Abu Dhabi",
			OpeningDate: mustDate("2023-01-15"),
			Phone:       "+971-2-123-4567",
		},
		{
			ID:          "REST-AUH-002",
			Name:        "Spice Route Al Wahda",
			City:        "Abu Dhabi",
			Country:     "UAE",
			Address:     "Al Wahda Mall Abu Dhabi",
			OpeningDate: mustDate("2023-06-20"),
			Phone:       "+971-2-234-5678",
		},
		{
			ID:          "REST-DXB-001",
			Name:        "Spice Route Marina",
			City:        "Dubai",
			Country:     "UAE",
			Address:     "Dubai Marina Walk",
			OpeningDate: mustDate("2023-03-10"),
			Phone:       "+971-4-345-6789",
		},
		{
			ID:          "REST-DXB-002",
			Name:        "Spice Route Mall of Emirates",
			City:        "Dubai",
			Country:     "UAE",
			Address:     "Mall of the Emirates Dubai",
			OpeningDate: mustDate("2023-09-05"),
			Phone:       "+971-4-456-7890",
		},
		{
			ID:          "REST-SHJ-001",
			Name:        "Spice Route City Centre",
			City:        "Sharjah",
			Country:     "UAE",
			Address:     "City Centre Sharjah",
			OpeningDate: mustDate("2024-02-14"),
			Phone:       "+971-6-567-8901",
		},
	}
}

// BuildMenu gives every restaurant the full master catalog, each offering with
// an independently jittered price in [0.95, 1.05] of base, rounded to 2
// decimals.
func BuildMenu(rng *rand.Rand) map[string][]domain.MenuOffering {
	menu := make(map[string][]domain.MenuOffering)
	for _, r := range BuildRestaurants() {
		offerings := make([]domain.MenuOffering, 0, len(masterMenu))
		for _, item := range masterMenu {
			jitter := 0.95 + rng.Float64()*0.10
			offerings = append(offerings, domain.MenuOffering{
				RestaurantID: r.ID,
				ItemID:       item.ID,
				Name:         item.Name,
				Category:     item.Category,
				Price:        domain.Round2(item.Price * jitter),
				Ingredients:  item.Ingredients,
				IsVegetarian: item.IsVegetarian,
				SpiceLevel:   item.SpiceLevel,
			})
		}
		menu[r.ID] = offerings
	}
	return menu
}

// BuildCustomers generates n customers with monotonically assigned ids and a
// join date uniform within the trailing two-year window.
func BuildCustomers(rng *rand.Rand, n int) []domain.Customer {
	faker := gofakeit.New(rng.Int63())
	now := time.Now()
	windowDays := 2 * 365

	customers := make([]domain.Customer, 0, n)
	for i := 0; i < n; i++ {
		joined := now.AddDate(0, 0, -rng.Intn(windowDays+1))
		customers = append(customers, domain.Customer{
			ID:       fmt.Sprintf("CUST-%d", customerIDBase+i),
			Name:     faker.Name(),
			Email:    faker.Email(),
			Phone:    faker.Phone(),
			City:     CustomerCities[rng.Intn(len(CustomerCities))],
			JoinDate: joined.Truncate(24 * time.Hour),
		})
	}
	return customers
}
