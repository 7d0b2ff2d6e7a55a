package queries

import (
	"context"

	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListByResource(ctx context.Context, resourceID int64, includeExpired bool) ([]*BookingListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByResourceID(ctx context.Context, resourceID int64, includeExpired bool) ([]*BookingListItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID int64, includeExpired bool) ([]*BookingListItem, error) {
	items, err := q.store.FindByResourceID(ctx, resourceID, includeExpired)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*BookingListItem, error) {
	items, err := q.store.FindByUserID(ctx, userID, includeExpired)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
