package request

import (
	"time"

	"slotdesk/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID  int64  `json:"resourceId" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
	Timeslot    string `json:"timeslot" binding:"required,oneof=FM EM"`
}

func (r CreateBookingRequest) ToDomain(now time.Time, loc *time.Location, userID uuid.UUID) (*booking.Booking, error) {
	date, err := booking.ParseDate(r.BookingDate)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(r.Timeslot)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(now, loc, r.ResourceID, userID, date, slot)
}
