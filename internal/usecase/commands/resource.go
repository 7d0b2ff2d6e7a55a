package commands

import (
	"context"

	"slotdesk/internal/domain/resource"
	reqdto "slotdesk/internal/handler/dto/request"
	"slotdesk/internal/infra"
	"slotdesk/internal/infra/db"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/queries"
	"slotdesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceCommands interface {
	Create(ctx context.Context, req reqdto.CreateResourceRequest) (*queries.ResourceView, error)
	Update(ctx context.Context, id int64, req reqdto.UpdateResourceRequest) (*queries.ResourceView, error)
	Delete(ctx context.Context, id int64) error
}

type resourceCommandsImpl struct {
	resourceRepo    ResourceRepository
	resourceQueries queries.ResourceQueries
	pool            *pgxpool.Pool
}

func NewResourceCommands(
	resourceRepo ResourceRepository,
	resourceQueries queries.ResourceQueries,
	pool *pgxpool.Pool,
) ResourceCommands {
	return &resourceCommandsImpl{
		resourceRepo:    resourceRepo,
		resourceQueries: resourceQueries,
		pool:            pool,
	}
}

func (c *resourceCommandsImpl) Create(ctx context.Context, req reqdto.CreateResourceRequest) (*queries.ResourceView, error) {
	entity, err := resource.NewResource(req.Name, req.TypeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		return c.resourceRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrResourceTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.resourceQueries.GetByID(ctx, id)
}

func (c *resourceCommandsImpl) Update(ctx context.Context, id int64, req reqdto.UpdateResourceRequest) (*queries.ResourceView, error) {
	snap, err := c.findResource(ctx, id)
	if err != nil {
		return nil, err
	}

	entity := resource.ReconstructResource(snap.ID, snap.Name, snap.TypeID, snap.TypeName, snap.CreatedAt, snap.UpdatedAt)
	if req.Name != nil {
		if err := entity.Rename(*req.Name); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if req.TypeID != nil {
		if err := entity.ChangeType(*req.TypeID); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.resourceRepo.Update(ctx, tx, id, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrResourceTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.resourceQueries.GetByID(ctx, id)
}

// Delete refuses to remove a resource that still has bookings; the booking
// rows keep their history unless an admin deletes them first.
func (c *resourceCommandsImpl) Delete(ctx context.Context, id int64) error {
	if _, err := c.findResource(ctx, id); err != nil {
		return err
	}

	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.resourceRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.ErrResourceInUse
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *resourceCommandsImpl) findResource(ctx context.Context, id int64) (*ResourceSnapshot, error) {
	snap, err := c.resourceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}
