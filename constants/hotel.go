package constants

import "os"

// HotelInfo holds the identity fields stamped on every booking record.
type HotelInfo struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Email   string
	Fax     string
}

// HotelFromEnv reads the hotel identity from the environment with local
// defaults, so a fresh checkout still produces printable invoices.
func HotelFromEnv() HotelInfo {
	return HotelInfo{
		ID:      getEnvOr("HOTEL_ID", "HTL-001"),
		Name:    getEnvOr("HOTEL_NAME", "Grand Palace Hotel"),
		Address: getEnvOr("HOTEL_ADDRESS", "12 MG Road, Bengaluru"),
		Phone:   getEnvOr("HOTEL_PHONE", "080-22334455"),
		Email:   getEnvOr("HOTEL_EMAIL", "frontdesk@grandpalace.example"),
		Fax:     getEnvOr("HOTEL_FAX", ""),
	}
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
