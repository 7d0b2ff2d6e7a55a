//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/domain/user"
	reqdto "slotdesk/internal/handler/dto/request"
	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/clock"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/commands"
	"slotdesk/tests/common/builder"
	commandsmock "slotdesk/tests/mock/commands"
	queriesmock "slotdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockBookingRepo  *commandsmock.MockBookingRepository
	mockResourceRepo *commandsmock.MockResourceRepository
	mockQueries      *queriesmock.MockBookingQueries
	mockCache        *queriesmock.MockAvailabilityCache
	clock            *clock.MockClock
	sut              commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockResourceRepo = commandsmock.NewMockResourceRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCache = queriesmock.NewMockAvailabilityCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC))

	s.sut = commands.NewBookingCommands(
		s.mockBookingRepo,
		s.mockResourceRepo,
		s.mockQueries,
		s.mockCache,
		nil, // pool is only reached by paths that open a transaction
		s.clock,
		time.UTC,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreate() {
	userID := uuid.New()
	req := reqdto.CreateBookingRequest{
		ResourceID:  1,
		BookingDate: "2026-09-15",
		Timeslot:    "FM",
	}

	s.Run("resource missing: returns ErrResourceNotFound", func() {
		s.mockResourceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.sut.Create(context.Background(), req, userID)
		s.ErrorIs(err, errs.ErrResourceNotFound)
	})

	s.Run("slot already open: returns ErrDomainValidation", func() {
		s.mockResourceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(builder.NewResourceBuilder().BuildSnapshot(), nil).Times(1)
		s.clock.Set(time.Date(2026, time.September, 15, 8, 0, 0, 0, time.UTC))

		_, err := s.sut.Create(context.Background(), req, userID)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.ErrorIs(err, booking.ErrSlotInPast)
	})

	s.Run("invalid date: returns ErrDomainValidation", func() {
		s.mockResourceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(builder.NewResourceBuilder().BuildSnapshot(), nil).Times(1)

		badReq := req
		badReq.BookingDate = "15/09/2026"
		_, err := s.sut.Create(context.Background(), badReq, userID)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.ErrorIs(err, booking.ErrInvalidDate)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	owner := uuid.New()
	stranger := uuid.New()

	s.Run("booking missing: returns ErrBookingNotFound", func() {
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.sut.Cancel(context.Background(), 1, owner, user.RoleMember)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("member cannot cancel another user's booking", func() {
		snap := builder.NewBookingBuilder().WithUser(owner).BuildSnapshot()
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).
			Return(snap, nil).Times(1)

		_, err := s.sut.Cancel(context.Background(), snap.ID, stranger, user.RoleMember)
		s.ErrorIs(err, errs.ErrNotBookingOwner)
	})

	s.Run("canceling a canceled booking is a no-op returning current state", func() {
		b := builder.NewBookingBuilder().WithUser(owner).Canceled()
		snap := b.BuildSnapshot()
		view := b.BuildView()

		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).
			Return(snap, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).
			Return(view, nil).Times(1)

		got, err := s.sut.Cancel(context.Background(), snap.ID, owner, user.RoleMember)
		s.NoError(err)
		s.Equal(booking.StatusCanceled.String(), got.Status)
	})

	s.Run("admin may cancel bookings owned by others", func() {
		b := builder.NewBookingBuilder().WithUser(owner).Canceled()
		snap := b.BuildSnapshot()
		view := b.BuildView()

		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).
			Return(snap, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).
			Return(view, nil).Times(1)

		_, err := s.sut.Cancel(context.Background(), snap.ID, stranger, user.RoleAdmin)
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestDelete() {
	s.Run("booking missing: returns ErrBookingNotFound", func() {
		s.mockBookingRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		err := s.sut.Delete(context.Background(), 42)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}
