package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spiceroute-datagen/config"
	"spiceroute-datagen/internal/catalog"
	"spiceroute-datagen/internal/orders"
	"spiceroute-datagen/internal/storage"
)

func main() {
	var (
		numCustomers = flag.Int("customers", 500, "number of customers in the catalog")
		interval     = flag.Duration("interval", 3*time.Second, "delay between emissions")
		maxOrders    = flag.Int("max", 0, "stop after this many orders (0 = run until interrupted)")
		seed         = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	rng := rand.New(rand.NewSource(*seed))
	cat, err := catalog.Build(rng, *numCustomers)
	if err != nil {
		log.Fatal("Failed to build catalog:", err)
	}

	sink := storage.NewKafkaOrderSink(config.NewKafkaWriter(config.OrdersTopic))
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	streamer := orders.NewStreamer(rng, cat, sink, *interval, *maxOrders)
	emitted, err := streamer.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Stream failed:", err)
	}
	log.Printf("Stopped after %d orders", emitted)
}
