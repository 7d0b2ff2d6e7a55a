package commands

import (
	"context"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/domain/user"
	reqdto "slotdesk/internal/handler/dto/request"
	"slotdesk/internal/infra"
	"slotdesk/internal/infra/db"
	"slotdesk/internal/infra/metrics"
	"slotdesk/internal/pkg/clock"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/queries"
	"slotdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID int64, actorID uuid.UUID, actorRole user.Role) (*queries.BookingView, error)
	Delete(ctx context.Context, bookingID int64) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	bookingQueries queries.BookingQueries
	cache          queries.AvailabilityCache
	pool           *pgxpool.Pool
	clock          clock.Clock
	loc            *time.Location
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	bookingQueries queries.BookingQueries,
	cache queries.AvailabilityCache,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		bookingQueries: bookingQueries,
		cache:          cache,
		pool:           pool,
		clock:          clk,
		loc:            loc,
	}
}

// Create enforces the single booking invariant: at most one active booking
// per (resource, date, slot). The check is not application-level; the insert
// relies on the partial unique index and a unique violation is reported as
// ErrSlotTaken, so two racing requests cannot both succeed.
func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error) {
	if _, err := c.resourceRepo.FindByID(ctx, req.ResourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := req.ToDomain(c.clock.Now(), c.loc, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	bookingID, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		return c.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			metrics.IncBookingCreated("conflict")
			return nil, errs.ErrSlotTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// Resource deleted between the existence check and the insert.
			return nil, errs.ErrResourceNotFound
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	metrics.IncBookingCreated("created")
	c.cache.Invalidate(ctx, entity.Date())

	return c.bookingQueries.GetByID(ctx, bookingID)
}

// Cancel soft-deletes a booking. Non-admins may only cancel their own
// bookings; cancelling an already-canceled booking is a no-op that returns
// the current state.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID int64, actorID uuid.UUID, actorRole user.Role) (*queries.BookingView, error) {
	snap, err := c.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actorRole.IsAdmin() && snap.UserID != actorID {
		return nil, errs.ErrNotBookingOwner
	}

	if snap.Status == booking.StatusCanceled {
		return c.bookingQueries.GetByID(ctx, bookingID)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.SetStatus(ctx, tx, bookingID, booking.StatusCanceled)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.IncBookingCanceled()
	c.cache.Invalidate(ctx, snap.Date)

	return c.bookingQueries.GetByID(ctx, bookingID)
}

// Delete removes the row outright. Admin only; enforced at the routing layer.
func (c *bookingCommandsImpl) Delete(ctx context.Context, bookingID int64) error {
	snap, err := c.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.Delete(ctx, tx, bookingID)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.IncBookingDeleted()
	c.cache.Invalidate(ctx, snap.Date)

	return nil
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, bookingID int64) (*BookingSnapshot, error) {
	snap, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}
