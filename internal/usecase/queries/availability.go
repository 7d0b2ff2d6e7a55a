package queries

import (
	"context"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/pkg/errs"
)

// AvailabilityQueries drives the booking UI and the chat assistant: which
// resources still have a free half-day slot on a given date.
type AvailabilityQueries interface {
	ListAvailable(ctx context.Context, date booking.Date, typeFilter *string) ([]*ResourceAvailabilityView, error)
}

type AvailabilityReadStore interface {
	FindAvailabilityByDate(ctx context.Context, date booking.Date) ([]*ResourceAvailabilityView, error)
}

// AvailabilityCache is a best-effort read cache keyed by date. Misses and
// cache failures fall through to the read store.
type AvailabilityCache interface {
	Get(ctx context.Context, date booking.Date) ([]*ResourceAvailabilityView, bool)
	Set(ctx context.Context, date booking.Date, items []*ResourceAvailabilityView)
	Invalidate(ctx context.Context, date booking.Date)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	cache AvailabilityCache
}

func NewAvailabilityQueries(store AvailabilityReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache}
}

func (q *availabilityQueriesImpl) ListAvailable(ctx context.Context, date booking.Date, typeFilter *string) ([]*ResourceAvailabilityView, error) {
	items, hit := q.cache.Get(ctx, date)
	if !hit {
		var err error
		items, err = q.store.FindAvailabilityByDate(ctx, date)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		q.cache.Set(ctx, date, items)
	}

	if typeFilter == nil {
		return items, nil
	}

	filtered := make([]*ResourceAvailabilityView, 0, len(items))
	for _, item := range items {
		if item.Type == *typeFilter {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
