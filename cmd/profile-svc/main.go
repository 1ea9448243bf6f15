package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"spiceroute-datagen/config"
	httpapi "spiceroute-datagen/internal/api/http"
	"spiceroute-datagen/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	baseURL := os.Getenv("MENU_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8084"
	}

	handler := httpapi.NewHandler(storage.NewStore(db), httpapi.DefaultMenuQR{BaseURL: baseURL})

	log.Println("Profile Service starting on port 8084")
	log.Fatal(http.ListenAndServe(":8084", httpapi.NewRouter(handler)))
}
