package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken  ErrorCode = "MISSING_TOKEN"
	ErrCodeStaffNotFound ErrorCode = "STAFF_NOT_FOUND"
	ErrCodeStaffExists   ErrorCode = "STAFF_EXISTS"
	ErrCodeInvalidRole   ErrorCode = "INVALID_ROLE"

	// Domain errors
	ErrCodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomExists       ErrorCode = "ROOM_EXISTS"
	ErrCodeCustomerNotFound ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
)

// AppError carries an error code alongside the message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError builds a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, nil if it is not one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Staff errors
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff already exists")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInvalid    = errors.New("invalid booking")
	ErrBookingCheckedOut = errors.New("booking already checked out")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
