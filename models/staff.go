package models

import "time"

// Staff roles
const (
	StaffRoleReceptionist = 0
	StaffRoleAdmin        = 1
)

// Staff is a front-desk account. Bookings are scoped to the admin a
// staff member belongs to.
type Staff struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New Staff" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"-"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	Role        int       `gorm:"default:0" json:"role"`
	Status      int       `gorm:"default:1" json:"status"`
	AdminID     *uint     `json:"adminId,omitempty"`
}
