package services

import (
	"testing"

	"hoteldesk/constants"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLoyaltyTier(t *testing.T) {
	tests := []struct {
		name          string
		totalSpent    float64
		totalBookings int
		want          string
	}{
		{"fresh customer", 0, 0, constants.TierBronze},
		{"just under both silver thresholds", 9999, 4, constants.TierBronze},
		{"silver by spend", 10000, 0, constants.TierSilver},
		{"silver by bookings", 0, 5, constants.TierSilver},
		{"gold by spend", 25000, 0, constants.TierGold},
		{"gold by bookings", 0, 10, constants.TierGold},
		{"platinum by spend", 50000, 0, constants.TierPlatinum},
		{"platinum by bookings", 0, 20, constants.TierPlatinum},
		{"highest matching tier wins", 60000, 3, constants.TierPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLoyaltyTier(tt.totalSpent, tt.totalBookings))
		})
	}
}

func TestDiscountForTier(t *testing.T) {
	assert.Equal(t, 0.0, DiscountForTier(constants.TierBronze))
	assert.Equal(t, 5.0, DiscountForTier(constants.TierSilver))
	assert.Equal(t, 10.0, DiscountForTier(constants.TierGold))
	assert.Equal(t, 15.0, DiscountForTier(constants.TierPlatinum))
	assert.Equal(t, 0.0, DiscountForTier("Unknown"))
}

func TestDiscountNonDecreasingWithSpend(t *testing.T) {
	// More lifetime spend never reduces the discount.
	prev := 0.0
	for spend := 0.0; spend <= 60000; spend += 500 {
		d := DiscountForTier(CalculateLoyaltyTier(spend, 0))
		assert.GreaterOrEqual(t, d, prev, "discount dropped at spend %.0f", spend)
		prev = d
	}
}

func TestLoyaltyPointsForAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   int
	}{
		{12000, 120},
		{199, 1},
		{99, 0},
		{100, 1},
		{0, 0},
		{-500, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LoyaltyPointsForAmount(tt.amount), "amount %.0f", tt.amount)
	}
}

func TestComputeCustomerStats(t *testing.T) {
	stats := computeCustomerStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AvgSpent)
	assert.Contains(t, stats.ByTier, constants.TierBronze)
}
