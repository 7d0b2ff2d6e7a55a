package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrSlotInPast      = errors.New("slot start is in the past")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type Booking struct {
	id         int64
	resourceID int64
	userID     uuid.UUID
	date       Date
	slot       Slot
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking validates and builds a booking in the active state. A slot is
// bookable until its start instant; once the slot has opened it can no longer
// be reserved.
func NewBooking(now time.Time, loc *time.Location, resourceID int64, userID uuid.UUID, date Date, slot Slot) (*Booking, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !slot.StartOn(date, loc).After(now) {
		return nil, ErrSlotInPast
	}

	return &Booking{
		resourceID: resourceID,
		userID:     userID,
		date:       date,
		slot:       slot,
		status:     StatusActive,
	}, nil
}

func ReconstructBooking(id, resourceID int64, userID uuid.UUID, date Date, slot Slot, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		date:       date,
		slot:       slot,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

// HasExpired reports whether the booked slot has already closed.
func (b *Booking) HasExpired(now time.Time, loc *time.Location) bool {
	return now.After(b.slot.EndOn(b.date, loc))
}

// BelongsTo reports whether the booking is owned by the given user.
func (b *Booking) BelongsTo(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) ResourceID() int64    { return b.resourceID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
