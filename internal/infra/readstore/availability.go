package readstore

import (
	"context"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/pgconv"
	"slotdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

// FindAvailabilityByDate derives per-slot availability from active bookings.
// There is no persisted "is booked" flag to drift out of sync.
func (s *AvailabilityReadStore) FindAvailabilityByDate(ctx context.Context, date booking.Date) ([]*queries.ResourceAvailabilityView, error) {
	const query = `
		SELECT r.id, r.name, rt.name,
		       NOT EXISTS (
		           SELECT 1 FROM bookings b
		           WHERE b.resource_id = r.id
		             AND b.booking_date = $1
		             AND b.slot = 'FM'
		             AND b.status = 'active'
		       ) AS morning_free,
		       NOT EXISTS (
		           SELECT 1 FROM bookings b
		           WHERE b.resource_id = r.id
		             AND b.booking_date = $1
		             AND b.slot = 'EM'
		             AND b.status = 'active'
		       ) AS afternoon_free
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id
		ORDER BY r.id`

	rows, err := s.pool.Query(ctx, query, pgconv.DateToPgtype(date.At(0, time.UTC)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	views := make([]*queries.ResourceAvailabilityView, 0)
	for rows.Next() {
		var view queries.ResourceAvailabilityView
		if err := rows.Scan(&view.ResourceID, &view.Name, &view.Type, &view.MorningFree, &view.AfternoonFree); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rows", err)
	}
	return views, nil
}
