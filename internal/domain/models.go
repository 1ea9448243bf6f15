package domain

import (
	"math"
	"time"
)

type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "None"
	SpiceMild   SpiceLevel = "Mild"
	SpiceMedium SpiceLevel = "Medium"
	SpiceHot    SpiceLevel = "Hot"
)

type OrderChannel string

const (
	ChannelDineIn   OrderChannel = "dine_in"
	ChannelTakeaway OrderChannel = "takeaway"
	ChannelDelivery OrderChannel = "delivery"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCompleted OrderStatus = "completed"
)

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

type Restaurant struct {
	ID          string    `json:"restaurant_id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Address     string    `json:"address"`
	OpeningDate time.Time `json:"opening_date"`
	Phone       string    `json:"phone"`
}

// MenuItem is a master-catalog entry; the price is the base price before
// per-restaurant jitter is applied.
type MenuItem struct {
	ID           string     `json:"item_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Ingredients  string     `json:"ingredients"`
	IsVegetarian bool       `json:"is_vegetarian"`
	SpiceLevel   SpiceLevel `json:"spice_level"`
}

// MenuOffering is a catalog item as sold by one restaurant, with its own
// effective price.
type MenuOffering struct {
	RestaurantID string     `json:"restaurant_id"`
	ItemID       string     `json:"item_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Ingredients  string     `json:"ingredients"`
	IsVegetarian bool       `json:"is_vegetarian"`
	SpiceLevel   SpiceLevel `json:"spice_level"`
}

type Customer struct {
	ID       string    `json:"customer_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	City     string    `json:"city"`
	JoinDate time.Time `json:"join_date"`
}

type OrderLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type Order struct {
	ID            string        `json:"order_id"`
	Timestamp     time.Time     `json:"timestamp"`
	RestaurantID  string        `json:"restaurant_id"`
	CustomerID    string        `json:"customer_id"`
	Channel       OrderChannel  `json:"order_type"`
	Items         []OrderLine   `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"order_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Review struct {
	ID           string    `json:"review_id"`
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	Text         string    `json:"review_text"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"review_timestamp"`
}

// CustomerProfile is the derived customer-360 record. It has no lifecycle of
// its own: it is recomputed in full from the order and review facts.
type CustomerProfile struct {
	CustomerID         string      `json:"customer_id"`
	Name               string      `json:"customer_name"`
	Email              string      `json:"email"`
	City               string      `json:"city"`
	JoinDate           time.Time   `json:"join_date"`
	TotalOrders        int         `json:"total_orders"`
	LifetimeSpend      float64     `json:"lifetime_spend"`
	AvgOrderValue      float64     `json:"avg_order_value"`
	LastOrderDate      *time.Time  `json:"last_order_date"`
	LoyaltyTier        LoyaltyTier `json:"loyalty_tier"`
	FavoriteRestaurant *string     `json:"favorite_restaurant"`
	FavoriteItem       *string     `json:"favorite_item"`
	AvgRatingGiven     float64     `json:"avg_rating_given"`
	TotalReviews       int         `json:"total_reviews"`
	IsVIP              bool        `json:"is_vip"`
}

// Round2 rounds a monetary amount to 2 decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
