package validator

import (
	"regexp"
	"time"

	"hoteldesk/constants"
	"hoteldesk/dto"
	"hoteldesk/errors"
	"hoteldesk/models"
)

// ValidateBookingRequest checks the check-in form beyond what binding
// tags cover: date formats and ordering, sane guest counts, a known
// room type.
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
	}

	if !isValidPhone(req.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Guest phone must be 10 digits", nil)
	}

	if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Guest email is invalid", nil)
	}

	checkIn, err := time.Parse(constants.DateLayout, req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Check-in date must be YYYY-MM-DD", err)
	}

	checkOut, err := time.Parse(constants.DateLayout, req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Check-out date must be YYYY-MM-DD", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Check-out date must be after check-in date", nil)
	}

	if req.RoomType < constants.RoomTypeStandard || req.RoomType > constants.RoomTypeSuite {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown room type", nil)
	}

	if req.RoomRate <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Room rate must be positive", nil)
	}

	if req.NumberOfGuests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "At least one guest is required", nil)
	}

	// The primary guest plus the listed additional guests must account
	// for the declared party size.
	if len(req.Guests) > 0 && len(req.Guests)+1 != req.NumberOfGuests {
		return errors.NewAppError(errors.ErrCodeValidation, "Guest list does not match the number of guests", nil)
	}

	return nil
}

// ValidateCheckoutRequest checks the settlement figures
func ValidateCheckoutRequest(req *dto.CheckoutRequest) error {
	if req.Nights < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Nights cannot be negative", nil)
	}

	if req.AdditionalCharges < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Additional charges cannot be negative", nil)
	}

	if req.Discount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount cannot be negative", nil)
	}

	if req.PaymentMethod < constants.PaymentMethodCash || req.PaymentMethod > constants.PaymentMethodUPI {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown payment method", nil)
	}

	if req.ActualCheckOutDate != "" {
		if _, err := time.Parse(constants.DateLayout, req.ActualCheckOutDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Actual check-out date must be YYYY-MM-DD", err)
		}
	}

	return nil
}

// ValidateRoomRequest checks a new catalog entry
func ValidateRoomRequest(req *dto.CreateRoomRequest) error {
	if req.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}

	if req.Type < constants.RoomTypeStandard || req.Type > constants.RoomTypeSuite {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown room type", nil)
	}

	if req.Rate <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Rate must be positive", nil)
	}

	if req.Floor < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Floor must be at least 1", nil)
	}

	return nil
}

// ValidateStaff checks a staff account before registration
func ValidateStaff(staff *models.Staff) error {
	if staff.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(staff.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is invalid", nil)
	}

	if staff.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(staff.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if staff.PhoneNumber != "" && !isValidPhone(staff.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number must be 10 digits", nil)
	}

	if staff.Role < models.StaffRoleReceptionist || staff.Role > models.StaffRoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Unknown role", nil)
	}

	return nil
}

// ValidateDateRange checks a from/to reporting range
func ValidateDateRange(from, to string) error {
	start, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "From date must be YYYY-MM-DD", err)
	}

	end, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "To date must be YYYY-MM-DD", err)
	}

	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "To date must not precede from date", nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
