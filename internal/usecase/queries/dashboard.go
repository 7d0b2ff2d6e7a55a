package queries

import (
	"context"

	"slotdesk/internal/pkg/errs"
)

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardView, error)
}

type DashboardReadStore interface {
	Summarize(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardView, error) {
	view, err := q.store.Summarize(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
