package readstore

import (
	"context"

	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/pgconv"
	"slotdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Default listings show live bookings only: still active and the slot end
// has not passed. includeExpiredBookings=true lifts the whole filter. The
// cutoff is computed in SQL so both list queries share one definition with
// the database session timezone.
const liveBookingsOnly = `
	b.status = 'active' AND (b.booking_date + CASE b.slot
		WHEN 'FM' THEN interval '12 hours'
		ELSE interval '17 hours'
	END) >= now()`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.resource_id, r.name, b.user_id, u.email,
		       b.booking_date, b.slot, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN resources r ON r.id = b.resource_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`

	var (
		view      queries.BookingView
		userID    uuid.UUID
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &userID, &view.UserEmail,
		&date, &view.Slot, &view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.UserID = userID
	view.BookingDate = pgconv.DateFromPgtype(date).Format("2006-01-02")
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (s *BookingReadStore) FindByResourceID(ctx context.Context, resourceID int64, includeExpired bool) ([]*queries.BookingListItem, error) {
	query := `
		SELECT b.id, b.resource_id, r.name, b.booking_date, b.slot, b.status, b.created_at
		FROM bookings b
		JOIN resources r ON r.id = b.resource_id
		WHERE b.resource_id = $1`
	if !includeExpired {
		query += " AND " + liveBookingsOnly
	}
	query += " ORDER BY b.booking_date, b.slot, b.id"

	rows, err := s.pool.Query(ctx, query, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by resource", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*queries.BookingListItem, error) {
	query := `
		SELECT b.id, b.resource_id, r.name, b.booking_date, b.slot, b.status, b.created_at
		FROM bookings b
		JOIN resources r ON r.id = b.resource_id
		WHERE b.user_id = $1`
	if !includeExpired {
		query += " AND " + liveBookingsOnly
	}
	query += " ORDER BY b.booking_date, b.slot, b.id"

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item      queries.BookingListItem
			date      pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName,
			&date, &item.Slot, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.BookingDate = pgconv.DateFromPgtype(date).Format("2006-01-02")
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
