package constants

// Room type
const (
	RoomTypeStandard = 0
	RoomTypeDeluxe   = 1
	RoomTypeSuite    = 2
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
	RoomStatusReserved    = 4
)

// Booking status
const (
	BookingStatusConfirmed  = 0
	BookingStatusCheckedIn  = 1
	BookingStatusCheckedOut = 2
)

// Booking type
const (
	BookingTypeAdvance = 0
	BookingTypeWalkIn  = 1
)

// Payment status
const (
	PaymentStatusPending = 0
	PaymentStatusPaid    = 1
)

// Payment method
const (
	PaymentMethodCash = 0
	PaymentMethodCard = 1
	PaymentMethodUPI  = 2
)

// Loyalty tiers
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// GST for hotel accommodation: 12% split evenly between CGST and SGST
const (
	CGSTRate = 0.06
	SGSTRate = 0.06
)

// DateLayout is the wire format for all stay dates
const DateLayout = "2006-01-02"

// RoomTypeLabel maps a room type code to its display name
func RoomTypeLabel(roomType int) string {
	switch roomType {
	case RoomTypeStandard:
		return "standard"
	case RoomTypeDeluxe:
		return "deluxe"
	case RoomTypeSuite:
		return "suite"
	}
	return "unknown"
}

// RoomTypeFromLabel maps a display name back to its type code, -1 if unknown
func RoomTypeFromLabel(label string) int {
	switch label {
	case "standard":
		return RoomTypeStandard
	case "deluxe":
		return RoomTypeDeluxe
	case "suite":
		return RoomTypeSuite
	}
	return -1
}
