package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"spiceroute-datagen/internal/domain"
)

// ProfileSource answers profile lookups for the read API.
type ProfileSource interface {
	GetProfile(customerID string) (*domain.CustomerProfile, error)
	TopSpenders(n int) ([]domain.CustomerProfile, error)
}

// MenuQR renders a scannable link to one restaurant's menu.
type MenuQR interface {
	Generate(restaurantID string) ([]byte, error)
}

type Handler struct {
	Profiles ProfileSource
	QR       MenuQR
}

func NewHandler(profiles ProfileSource, qr MenuQR) *Handler {
	return &Handler{Profiles: profiles, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/customers/{customerId}/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profiles/top", h.topSpenders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/qr", h.menuQR).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	profile, err := h.Profiles.GetProfile(customerID)
	if err == sql.ErrNoRows {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *Handler) topSpenders(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	profiles, err := h.Profiles.TopSpenders(n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []domain.CustomerProfile{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}

func (h *Handler) menuQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Generate(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "profile-svc",
	})
}

// DefaultMenuQR encodes the public menu URL for a restaurant.
type DefaultMenuQR struct {
	BaseURL string
}

func (g DefaultMenuQR) Generate(restaurantID string) ([]byte, error) {
	return qrcode.Encode(g.BaseURL+"/menu.html?restaurant_id="+restaurantID, qrcode.Medium, 256)
}
