package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"spiceroute-datagen/internal/domain"
)

// Store persists generated datasets into the warehouse tables the downstream
// pipeline reads. Order lines are kept as a proper nested structure in the
// model; flattening to a jsonb column happens only here, at the adapter.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			restaurant_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			address TEXT NOT NULL,
			opening_date DATE NOT NULL,
			phone TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			restaurant_id TEXT NOT NULL REFERENCES restaurants(restaurant_id),
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			ingredients TEXT NOT NULL,
			is_vegetarian BOOLEAN NOT NULL,
			spice_level TEXT NOT NULL,
			PRIMARY KEY (restaurant_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			city TEXT NOT NULL,
			join_date DATE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS historical_orders (
			order_id TEXT PRIMARY KEY,
			order_timestamp TIMESTAMPTZ NOT NULL,
			restaurant_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			order_type TEXT NOT NULL,
			items JSONB NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			payment_method TEXT NOT NULL,
			order_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customer_reviews (
			review_id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			review_text TEXT NOT NULL,
			rating INT NOT NULL,
			review_timestamp TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customer_profiles (
			customer_id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			city TEXT NOT NULL,
			join_date DATE NOT NULL,
			total_orders INT NOT NULL,
			lifetime_spend NUMERIC(10,2) NOT NULL,
			avg_order_value NUMERIC(10,2) NOT NULL,
			last_order_date TIMESTAMPTZ,
			loyalty_tier TEXT NOT NULL,
			favorite_restaurant TEXT,
			favorite_item TEXT,
			avg_rating_given NUMERIC(10,2) NOT NULL,
			total_reviews INT NOT NULL,
			is_vip BOOLEAN NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) InsertRestaurants(restaurants []domain.Restaurant) error {
	for _, r := range restaurants {
		_, err := s.DB.Exec(`
			INSERT INTO restaurants (restaurant_id, name, city, country, address, opening_date, phone)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (restaurant_id) DO NOTHING
		`, r.ID, r.Name, r.City, r.Country, r.Address, r.OpeningDate, r.Phone)
		if err != nil {
			return fmt.Errorf("failed to insert restaurant %s: %w", r.ID, err)
		}
	}
	return nil
}

func (s *Store) InsertMenu(menu map[string][]domain.MenuOffering) error {
	for _, offerings := range menu {
		for _, o := range offerings {
			_, err := s.DB.Exec(`
				INSERT INTO menu_items (restaurant_id, item_id, name, category, price, ingredients, is_vegetarian, spice_level)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				ON CONFLICT (restaurant_id, item_id) DO UPDATE SET price = EXCLUDED.price
			`, o.RestaurantID, o.ItemID, o.Name, o.Category, o.Price, o.Ingredients, o.IsVegetarian, string(o.SpiceLevel))
			if err != nil {
				return fmt.Errorf("failed to insert offering %s/%s: %w", o.RestaurantID, o.ItemID, err)
			}
		}
	}
	return nil
}

func (s *Store) InsertCustomers(customers []domain.Customer) error {
	for _, c := range customers {
		_, err := s.DB.Exec(`
			INSERT INTO customers (customer_id, name, email, phone, city, join_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (customer_id) DO NOTHING
		`, c.ID, c.Name, c.Email, c.Phone, c.City, c.JoinDate)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}
	return nil
}

func (s *Store) InsertOrders(orders []domain.Order) error {
	for _, o := range orders {
		items, err := json.Marshal(o.Items)
		if err != nil {
			return fmt.Errorf("failed to encode order %s items: %w", o.ID, err)
		}
		_, err = s.DB.Exec(`
			INSERT INTO historical_orders (order_id, order_timestamp, restaurant_id, customer_id, order_type, items, total_amount, payment_method, order_status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (order_id) DO NOTHING
		`, o.ID, o.Timestamp, o.RestaurantID, o.CustomerID, string(o.Channel), items, o.TotalAmount, string(o.PaymentMethod), string(o.Status), o.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.ID, err)
		}
	}
	return nil
}

func (s *Store) InsertReviews(reviews []domain.Review) error {
	for _, r := range reviews {
		_, err := s.DB.Exec(`
			INSERT INTO customer_reviews (review_id, order_id, customer_id, restaurant_id, review_text, rating, review_timestamp)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (review_id) DO NOTHING
		`, r.ID, r.OrderID, r.CustomerID, r.RestaurantID, r.Text, r.Rating, r.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert review %s: %w", r.ID, err)
		}
	}
	return nil
}

func (s *Store) UpsertProfiles(profiles []domain.CustomerProfile) error {
	for _, p := range profiles {
		_, err := s.DB.Exec(`
			INSERT INTO customer_profiles (customer_id, customer_name, email, city, join_date, total_orders, lifetime_spend, avg_order_value, last_order_date, loyalty_tier, favorite_restaurant, favorite_item, avg_rating_given, total_reviews, is_vip)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (customer_id) DO UPDATE SET
				total_orders = EXCLUDED.total_orders,
				lifetime_spend = EXCLUDED.lifetime_spend,
				avg_order_value = EXCLUDED.avg_order_value,
				last_order_date = EXCLUDED.last_order_date,
				loyalty_tier = EXCLUDED.loyalty_tier,
				favorite_restaurant = EXCLUDED.favorite_restaurant,
				favorite_item = EXCLUDED.favorite_item,
				avg_rating_given = EXCLUDED.avg_rating_given,
				total_reviews = EXCLUDED.total_reviews,
				is_vip = EXCLUDED.is_vip
		`, p.CustomerID, p.Name, p.Email, p.City, p.JoinDate, p.TotalOrders, p.LifetimeSpend,
			p.AvgOrderValue, p.LastOrderDate, string(p.LoyaltyTier), p.FavoriteRestaurant,
			p.FavoriteItem, p.AvgRatingGiven, p.TotalReviews, p.IsVIP)
		if err != nil {
			return fmt.Errorf("failed to upsert profile %s: %w", p.CustomerID, err)
		}
	}
	return nil
}

// GetProfile loads one derived profile for the read API.
func (s *Store) GetProfile(customerID string) (*domain.CustomerProfile, error) {
	var p domain.CustomerProfile
	var tier string
	err := s.DB.QueryRow(`
		SELECT customer_id, customer_name, email, city, join_date, total_orders, lifetime_spend, avg_order_value, last_order_date, loyalty_tier, favorite_restaurant, favorite_item, avg_rating_given, total_reviews, is_vip
		FROM customer_profiles
		WHERE customer_id = $1
	`, customerID).Scan(&p.CustomerID, &p.Name, &p.Email, &p.City, &p.JoinDate, &p.TotalOrders,
		&p.LifetimeSpend, &p.AvgOrderValue, &p.LastOrderDate, &tier, &p.FavoriteRestaurant,
		&p.FavoriteItem, &p.AvgRatingGiven, &p.TotalReviews, &p.IsVIP)
	if err != nil {
		return nil, err
	}
	p.LoyaltyTier = domain.LoyaltyTier(tier)
	return &p, nil
}

// TopSpenders returns the n highest lifetime-spend profiles, spend descending
// with customer id as the stable tie-break.
func (s *Store) TopSpenders(n int) ([]domain.CustomerProfile, error) {
	rows, err := s.DB.Query(`
		SELECT customer_id, customer_name, email, city, join_date, total_orders, lifetime_spend, avg_order_value, last_order_date, loyalty_tier, favorite_restaurant, favorite_item, avg_rating_given, total_reviews, is_vip
		FROM customer_profiles
		ORDER BY lifetime_spend DESC, customer_id ASC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.CustomerProfile
	for rows.Next() {
		var p domain.CustomerProfile
		var tier string
		if err := rows.Scan(&p.CustomerID, &p.Name, &p.Email, &p.City, &p.JoinDate, &p.TotalOrders,
			&p.LifetimeSpend, &p.AvgOrderValue, &p.LastOrderDate, &tier, &p.FavoriteRestaurant,
			&p.FavoriteItem, &p.AvgRatingGiven, &p.TotalReviews, &p.IsVIP); err != nil {
			return nil, err
		}
		p.LoyaltyTier = domain.LoyaltyTier(tier)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
