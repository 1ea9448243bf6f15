package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spiceroute-datagen/config"
	"spiceroute-datagen/internal/storage"
)

// tap follows the live order topic and logs each emission; useful for
// verifying the stream end to end without the full downstream pipeline.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	tap := storage.NewOrderTap(config.NewKafkaReader(config.OrdersTopic, "order-tap"))
	defer tap.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Tapping live order stream...")
	for {
		order, err := tap.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Error reading order: %v", err)
			continue
		}
		log.Printf("%s | %s | %s | AED %.2f | %s",
			order.ID, order.RestaurantID, order.CustomerID, order.TotalAmount, order.Status)
	}
}
