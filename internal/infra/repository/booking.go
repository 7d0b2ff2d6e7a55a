package repository

import (
	"context"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/infra"
	"slotdesk/internal/infra/db"
	"slotdesk/internal/pkg/pgconv"
	"slotdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) commands.BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts an active booking. The partial unique index on
// (resource_id, booking_date, slot) WHERE status = 'active' is the only
// guard against double booking; a 23505 surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (resource_id, user_id, booking_date, slot, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		b.ResourceID(),
		b.UserID(),
		dateToPg(b.Date()),
		b.Slot().String(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*commands.BookingSnapshot, error) {
	const query = `
		SELECT id, resource_id, user_id, booking_date, slot, status
		FROM bookings
		WHERE id = $1`

	var (
		snap   commands.BookingSnapshot
		userID uuid.UUID
		date   pgtype.Date
		slot   string
		status string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.ResourceID, &userID, &date, &slot, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	snap.UserID = userID
	snap.Date = booking.DateOf(pgconv.DateFromPgtype(date))
	snap.Slot = booking.Slot(slot)
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, tx db.DBTX, id int64, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func dateToPg(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.At(0, time.UTC))
}
