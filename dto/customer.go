package dto

// CustomerResponse is the directory entry with loyalty standing
type CustomerResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address,omitempty"`
	FirstVisit    string   `json:"firstVisit"`
	LastVisit     string   `json:"lastVisit"`
	TotalBookings int      `json:"totalBookings"`
	TotalSpent    float64  `json:"totalSpent"`
	LoyaltyPoints int      `json:"loyaltyPoints"`
	LoyaltyTier   string   `json:"loyaltyTier"`
	Discount      float64  `json:"discount"`
	PreferredRoom string   `json:"preferredRoomType,omitempty"`
	Requests      []string `json:"specialRequests,omitempty"`
}

// CustomerPreferenceRequest records stay preferences
type CustomerPreferenceRequest struct {
	PreferredRoomType string   `json:"preferredRoomType"`
	SpecialRequests   []string `json:"specialRequests"`
}
