package readstore

import (
	"context"

	"slotdesk/internal/infra"
	"slotdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardReadStore struct {
	pool *pgxpool.Pool
}

func NewDashboardReadStore(pool *pgxpool.Pool) queries.DashboardReadStore {
	return &DashboardReadStore{pool: pool}
}

func (s *DashboardReadStore) Summarize(ctx context.Context) (*queries.DashboardView, error) {
	var view queries.DashboardView

	const countsQuery = `
		SELECT
			(SELECT count(*) FROM resources),
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM bookings WHERE status = 'active' AND booking_date = current_date)`

	err := s.pool.QueryRow(ctx, countsQuery).Scan(
		&view.TotalResources, &view.TotalUsers, &view.ActiveBookingsToday,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query dashboard counts", err)
	}

	const byTypeQuery = `
		SELECT rt.name, count(b.id)
		FROM resource_types rt
		LEFT JOIN resources r ON r.type_id = rt.id
		LEFT JOIN bookings b ON b.resource_id = r.id AND b.status = 'active'
		GROUP BY rt.id, rt.name
		ORDER BY rt.id`

	rows, err := s.pool.Query(ctx, byTypeQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by type", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.BookingsByTypeItem
		if err := rows.Scan(&item.Type, &item.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bookings by type row", err)
		}
		view.BookingsByType = append(view.BookingsByType, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings by type rows", err)
	}

	return &view, nil
}
