package commands

import (
	"context"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/domain/resource"
	"slotdesk/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ResourceSnapshot struct {
	ID        int64
	Name      string
	TypeID    int64
	TypeName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingSnapshot struct {
	ID         int64
	ResourceID int64
	UserID     uuid.UUID
	Date       booking.Date
	Slot       booking.Slot
	Status     booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	SetStatus(ctx context.Context, tx db.DBTX, id int64, status booking.Status) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type ResourceRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *resource.Resource) (int64, error)
	FindByID(ctx context.Context, id int64) (*ResourceSnapshot, error)
	Update(ctx context.Context, tx db.DBTX, id int64, r *resource.Resource) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}
