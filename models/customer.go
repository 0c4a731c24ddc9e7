package models

import (
	"time"

	"github.com/lib/pq"
)

// Customer is a loyalty-program profile. Matched by phone or email on
// every check-in, never deleted, aggregates accumulate for life.
type Customer struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name"`
	Email             string         `json:"email" gorm:"index"`
	Phone             string         `json:"phone" gorm:"index;type:varchar(15)"`
	Address           string         `json:"address"`
	IDProofType       string         `json:"idProofType"`
	IDProofNumber     string         `json:"idProofNumber"`
	FirstVisit        time.Time      `json:"firstVisit"`
	LastVisit         time.Time      `json:"lastVisit"`
	TotalBookings     int            `json:"totalBookings"`
	TotalSpent        float64        `json:"totalSpent"`
	LoyaltyPoints     int            `json:"loyaltyPoints"`
	LoyaltyTier       string         `json:"loyaltyTier" gorm:"default:Bronze"`
	PreferredRoomType string         `json:"preferredRoomType"`
	SpecialRequests   pq.StringArray `json:"specialRequests" gorm:"type:text[]"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
