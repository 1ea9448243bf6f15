package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spiceroute-datagen/internal/domain"
)

func setupCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewProfileCache(client, time.Hour), mr
}

func TestProfileCache_SetAndGetTier(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	fav := "Spice Route Downtown"
	p := domain.CustomerProfile{
		CustomerID:         "CUST-10001",
		Name:               "Amira Hassan",
		TotalOrders:        12,
		LifetimeSpend:      2450.75,
		AvgOrderValue:      204.23,
		LoyaltyTier:        domain.TierGold,
		FavoriteRestaurant: &fav,
		AvgRatingGiven:     4.2,
		TotalReviews:       4,
	}

	require.NoError(t, cache.SetProfile(ctx, p))

	tier, err := cache.GetTier(ctx, "CUST-10001")
	require.NoError(t, err)
	assert.Equal(t, "Gold", tier)

	assert.Equal(t, fav, mr.HGet("profile:CUST-10001", "favorite_restaurant"))
	assert.Equal(t, "false", mr.HGet("profile:CUST-10001", "is_vip"))

	ttl := mr.TTL("profile:CUST-10001")
	assert.Greater(t, ttl, time.Duration(0), "cached profiles must expire")
}

func TestProfileCache_GetTierMiss(t *testing.T) {
	cache, _ := setupCache(t)

	tier, err := cache.GetTier(context.Background(), "CUST-40404")
	require.NoError(t, err)
	assert.Empty(t, tier)
}

func TestProfileCache_TopSpenders(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	spends := map[string]float64{
		"CUST-10001": 5500.00,
		"CUST-10002": 120.50,
		"CUST-10003": 2300.00,
	}
	for id, spend := range spends {
		require.NoError(t, cache.RankSpender(ctx, domain.CustomerProfile{CustomerID: id, LifetimeSpend: spend}))
	}

	top, err := cache.TopSpenders(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"CUST-10001", "CUST-10003"}, top)
}
