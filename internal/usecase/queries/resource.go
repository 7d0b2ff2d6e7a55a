package queries

import (
	"context"

	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/errs"
)

type ResourceQueries interface {
	GetByID(ctx context.Context, id int64) (*ResourceView, error)
	List(ctx context.Context, typeFilter *string) ([]*ResourceView, error)
	ListTypes(ctx context.Context) ([]*ResourceTypeView, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ResourceView, error)
	FindAll(ctx context.Context, typeFilter *string) ([]*ResourceView, error)
	FindAllTypes(ctx context.Context) ([]*ResourceTypeView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id int64) (*ResourceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, typeFilter *string) ([]*ResourceView, error) {
	views, err := q.store.FindAll(ctx, typeFilter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *resourceQueriesImpl) ListTypes(ctx context.Context) ([]*ResourceTypeView, error) {
	types, err := q.store.FindAllTypes(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return types, nil
}
