package storage

import (
	"context"
	"strconv"
	"time"

	"spiceroute-datagen/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ProfileCache keeps the hot fields of each customer profile in Redis so the
// read API can answer without the warehouse.
type ProfileCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{Client: client, TTL: ttl}
}

func (c *ProfileCache) ProfileKey(customerID string) string {
	return "profile:" + customerID
}

func (c *ProfileCache) SetProfile(ctx context.Context, p domain.CustomerProfile) error {
	key := c.ProfileKey(p.CustomerID)
	fields := map[string]interface{}{
		"customer_name":    p.Name,
		"total_orders":     p.TotalOrders,
		"lifetime_spend":   p.LifetimeSpend,
		"avg_order_value":  p.AvgOrderValue,
		"loyalty_tier":     string(p.LoyaltyTier),
		"avg_rating_given": p.AvgRatingGiven,
		"total_reviews":    p.TotalReviews,
		"is_vip":           strconv.FormatBool(p.IsVIP),
		"last_updated":     time.Now().Unix(),
	}
	if p.FavoriteRestaurant != nil {
		fields["favorite_restaurant"] = *p.FavoriteRestaurant
	}
	if p.FavoriteItem != nil {
		fields["favorite_item"] = *p.FavoriteItem
	}

	if err := c.Client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}

// GetTier reads just the loyalty tier; empty string means a cache miss.
func (c *ProfileCache) GetTier(ctx context.Context, customerID string) (string, error) {
	tier, err := c.Client.HGet(ctx, c.ProfileKey(customerID), "loyalty_tier").Result()
	if err == redis.Nil {
		return "", nil
	}
	return tier, err
}

// RankSpender records the customer on the global spend leaderboard.
func (c *ProfileCache) RankSpender(ctx context.Context, p domain.CustomerProfile) error {
	return c.Client.ZAdd(ctx, "profiles:by_spend", redis.Z{
		Score:  p.LifetimeSpend,
		Member: p.CustomerID,
	}).Err()
}

// TopSpenders returns up to n customer ids, highest lifetime spend first.
func (c *ProfileCache) TopSpenders(ctx context.Context, n int) ([]string, error) {
	return c.Client.ZRevRange(ctx, "profiles:by_spend", 0, int64(n-1)).Result()
}
