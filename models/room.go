package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RoomNumber   string         `json:"roomNumber" gorm:"unique;size:10"`
	Type         int            `json:"type"`
	Rate         float64        `json:"rate"`
	Floor        int            `json:"floor"`
	Status       int            `json:"status" gorm:"default:1"`
	Amenities    pq.StringArray `json:"amenities" gorm:"type:text[]"`
	MaxOccupancy int            `json:"maxOccupancy"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 4 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 4", r.Status)
	}
	return nil
}
