package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Resource errors
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceTypeNotFound = errors.New("resource type not found")
	ErrResourceInUse        = errors.New("resource has bookings and cannot be deleted")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("resource slot is already booked")
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
