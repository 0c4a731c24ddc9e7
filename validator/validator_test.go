package validator

import (
	"testing"

	"hoteldesk/constants"
	"hoteldesk/dto"
	"hoteldesk/errors"
	"hoteldesk/models"
	"hoteldesk/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:      "Asha Verma",
		GuestEmail:     "asha@example.com",
		GuestPhone:     "9876543210",
		IDProofType:    "Aadhar",
		IDProofNumber:  "1234-5678-9012",
		RoomType:       constants.RoomTypeDeluxe,
		RoomNumber:     "301",
		RoomRate:       3500,
		CheckInDate:    "2026-08-31",
		CheckOutDate:   "2026-09-02",
		NumberOfGuests: 1,
	}
}

func TestValidateBookingRequest(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*dto.CreateBookingRequest)
		wantCode errors.ErrorCode
	}{
		{"valid request", func(r *dto.CreateBookingRequest) {}, ""},
		{"missing name", func(r *dto.CreateBookingRequest) { r.GuestName = "" }, errors.ErrCodeRequiredField},
		{"short phone", func(r *dto.CreateBookingRequest) { r.GuestPhone = "12345" }, errors.ErrCodeInvalidPhone},
		{"bad email", func(r *dto.CreateBookingRequest) { r.GuestEmail = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"empty email is fine", func(r *dto.CreateBookingRequest) { r.GuestEmail = "" }, ""},
		{"bad check-in format", func(r *dto.CreateBookingRequest) { r.CheckInDate = "31/08/2026" }, errors.ErrCodeInvalidDate},
		{"checkout before checkin", func(r *dto.CreateBookingRequest) { r.CheckOutDate = "2026-08-30" }, errors.ErrCodeInvalidDate},
		{"checkout equal to checkin", func(r *dto.CreateBookingRequest) { r.CheckOutDate = "2026-08-31" }, errors.ErrCodeInvalidDate},
		{"unknown room type", func(r *dto.CreateBookingRequest) { r.RoomType = 7 }, errors.ErrCodeValidation},
		{"zero rate", func(r *dto.CreateBookingRequest) { r.RoomRate = 0 }, errors.ErrCodeInvalidAmount},
		{"zero guests", func(r *dto.CreateBookingRequest) { r.NumberOfGuests = 0 }, errors.ErrCodeValidation},
		{
			"guest list mismatch",
			func(r *dto.CreateBookingRequest) {
				r.NumberOfGuests = 2
				r.Guests = []types.Guest{{Name: "A"}, {Name: "B"}}
			},
			errors.ErrCodeValidation,
		},
		{
			"guest list matching party size",
			func(r *dto.CreateBookingRequest) {
				r.NumberOfGuests = 3
				r.Guests = []types.Guest{{Name: "A"}, {Name: "B"}}
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := ValidateBookingRequest(&req)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestValidateCheckoutRequest(t *testing.T) {
	valid := dto.CheckoutRequest{
		Nights:        2,
		PaymentMethod: constants.PaymentMethodCard,
	}
	assert.NoError(t, ValidateCheckoutRequest(&valid))

	tests := []struct {
		name   string
		mutate func(*dto.CheckoutRequest)
	}{
		{"negative nights", func(r *dto.CheckoutRequest) { r.Nights = -1 }},
		{"negative additional charges", func(r *dto.CheckoutRequest) { r.AdditionalCharges = -50 }},
		{"negative discount", func(r *dto.CheckoutRequest) { r.Discount = -10 }},
		{"unknown payment method", func(r *dto.CheckoutRequest) { r.PaymentMethod = 9 }},
		{"bad actual checkout date", func(r *dto.CheckoutRequest) { r.ActualCheckOutDate = "tomorrow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, ValidateCheckoutRequest(&req))
		})
	}
}

func TestValidateRoomRequest(t *testing.T) {
	valid := dto.CreateRoomRequest{
		RoomNumber: "607",
		Type:       constants.RoomTypeSuite,
		Rate:       5000,
		Floor:      6,
	}
	assert.NoError(t, ValidateRoomRequest(&valid))

	missingNumber := valid
	missingNumber.RoomNumber = ""
	assert.Error(t, ValidateRoomRequest(&missingNumber))

	badType := valid
	badType.Type = -1
	assert.Error(t, ValidateRoomRequest(&badType))

	freeRoom := valid
	freeRoom.Rate = 0
	assert.Error(t, ValidateRoomRequest(&freeRoom))

	basement := valid
	basement.Floor = 0
	assert.Error(t, ValidateRoomRequest(&basement))
}

func TestValidateStaff(t *testing.T) {
	valid := models.Staff{
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Password:    "secret1",
		PhoneNumber: "9876543210",
		Role:        models.StaffRoleReceptionist,
	}
	assert.NoError(t, ValidateStaff(&valid))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, ValidateStaff(&shortPassword))

	badEmail := valid
	badEmail.Email = "ravi"
	assert.Error(t, ValidateStaff(&badEmail))

	badRole := valid
	badRole.Role = 5
	assert.Error(t, ValidateStaff(&badRole))
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2026-08-01", "2026-08-31"))
	assert.NoError(t, ValidateDateRange("2026-08-31", "2026-08-31"))
	assert.Error(t, ValidateDateRange("2026-08-31", "2026-08-01"))
	assert.Error(t, ValidateDateRange("Aug 1", "2026-08-31"))
}
