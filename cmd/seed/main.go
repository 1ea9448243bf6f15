package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"spiceroute-datagen/config"
	"spiceroute-datagen/internal/catalog"
	"spiceroute-datagen/internal/orders"
	"spiceroute-datagen/internal/profile"
	"spiceroute-datagen/internal/reviews"
	"spiceroute-datagen/internal/storage"
)

func main() {
	var (
		numCustomers = flag.Int("customers", 500, "number of customers to generate")
		numOrders    = flag.Int("orders", 8000, "number of historical orders")
		monthsBack   = flag.Int("months", 6, "historical window in months")
		coverage     = flag.Float64("coverage", 0.35, "fraction of orders that get a review")
		seed         = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Seeding dataset (seed=%d)", *seed)

	cat, err := catalog.Build(rng, *numCustomers)
	if err != nil {
		log.Fatal("Failed to build catalog:", err)
	}
	log.Printf("Generated %d restaurants, %d customers", len(cat.Restaurants), len(cat.Customers))

	batch, err := orders.HistoricalBatch(rng, cat, *numOrders, *monthsBack, time.Now())
	if err != nil {
		log.Fatal("Failed to generate historical orders:", err)
	}
	revenue := 0.0
	for _, o := range batch {
		revenue += o.TotalAmount
	}
	log.Printf("Generated %d historical orders, total revenue AED %.2f", len(batch), revenue)

	revs := reviews.FromOrders(rng, batch, *coverage)
	log.Printf("Generated %d reviews", len(revs))

	profiles, err := profile.BuildProfiles(profile.Input{
		Customers:   cat.Customers,
		Restaurants: cat.Restaurants,
		Orders:      batch,
		Reviews:     revs,
	})
	if err != nil {
		log.Fatal("Failed to build customer profiles:", err)
	}
	log.Printf("Built %d customer profiles", len(profiles))

	db := config.MustInitPostgres()
	defer db.Close()
	store := storage.NewStore(db)

	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := store.InsertRestaurants(cat.Restaurants); err != nil {
		log.Fatal("Failed to persist restaurants:", err)
	}
	if err := store.InsertMenu(cat.MenuByRestaurant); err != nil {
		log.Fatal("Failed to persist menu:", err)
	}
	if err := store.InsertCustomers(cat.Customers); err != nil {
		log.Fatal("Failed to persist customers:", err)
	}
	if err := store.InsertOrders(batch); err != nil {
		log.Fatal("Failed to persist orders:", err)
	}
	if err := store.InsertReviews(revs); err != nil {
		log.Fatal("Failed to persist reviews:", err)
	}
	if err := store.UpsertProfiles(profiles); err != nil {
		log.Fatal("Failed to persist profiles:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewProfileCache(rdb, 24*time.Hour)

	ctx := context.Background()
	for _, p := range profiles {
		if err := cache.SetProfile(ctx, p); err != nil {
			log.Printf("Warning: failed to cache profile %s: %v", p.CustomerID, err)
			continue
		}
		if err := cache.RankSpender(ctx, p); err != nil {
			log.Printf("Warning: failed to rank profile %s: %v", p.CustomerID, err)
		}
	}

	log.Println("Seed run complete")
}
