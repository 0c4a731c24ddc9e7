package dto

// CreateRoomRequest adds a room to the catalog
type CreateRoomRequest struct {
	RoomNumber   string   `json:"roomNumber" binding:"required"`
	Type         int      `json:"type"`
	Rate         float64  `json:"rate" binding:"required"`
	Floor        int      `json:"floor" binding:"required"`
	Amenities    []string `json:"amenities"`
	MaxOccupancy int      `json:"maxOccupancy"`
}

// UpdateRoomRequest changes catalog fields on an existing room. Nil
// fields are left untouched.
type UpdateRoomRequest struct {
	Rate         *float64 `json:"rate"`
	Floor        *int     `json:"floor"`
	Amenities    []string `json:"amenities"`
	MaxOccupancy *int     `json:"maxOccupancy"`
}

// UpdateRoomStatusRequest overrides a room's status
type UpdateRoomStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// AvailableRoomsRequest is the availability query
type AvailableRoomsRequest struct {
	CheckInDate  string `form:"checkInDate" binding:"required"`
	CheckOutDate string `form:"checkOutDate" binding:"required"`
	RoomType     *int   `form:"roomType"`
}
