//go:build unit || e2e

package builder

import (
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/usecase/commands"
	"slotdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           int64
	ResourceID   int64
	ResourceName string
	UserID       uuid.UUID
	UserEmail    string
	Date         booking.Date
	Slot         booking.Slot
	Status       booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		ResourceID:   1,
		ResourceName: "Desk 1",
		UserID:       uuid.New(),
		UserEmail:    "test@example.com",
		Date:         booking.NewDate(2026, time.September, 15),
		Slot:         booking.SlotMorning,
		Status:       booking.StatusActive,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(slot booking.Slot) *BookingBuilder {
	b.Slot = slot
	return b
}

func (b *BookingBuilder) WithDate(date booking.Date) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) Canceled() *BookingBuilder {
	b.Status = booking.StatusCanceled
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	now := time.Now()
	return booking.ReconstructBooking(b.ID, b.ResourceID, b.UserID, b.Date, b.Slot, b.Status, now, now)
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		UserID:     b.UserID,
		Date:       b.Date,
		Slot:       b.Slot,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		BookingDate:  b.Date.String(),
		Slot:         b.Slot.String(),
		Status:       b.Status.String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		BookingDate:  b.Date.String(),
		Slot:         b.Slot.String(),
		Status:       b.Status.String(),
		CreatedAt:    time.Now(),
	}
}
