//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/queries"
	"slotdesk/tests/common/builder"
	queriesmock "slotdesk/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockAvailabilityReadStore
	mockCache *queriesmock.MockAvailabilityCache
	sut       queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.mockCache = queriesmock.NewMockAvailabilityCache(s.mockCtrl)
	s.sut = queries.NewAvailabilityQueries(s.mockStore, s.mockCache)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestListAvailable() {
	date := booking.NewDate(2026, time.September, 15)
	items := []*queries.ResourceAvailabilityView{
		builder.NewResourceBuilder().BuildAvailability(true, false),
		builder.NewResourceBuilder().WithType(2, "meeting_room").BuildAvailability(true, true),
	}

	s.Run("cache hit skips the read store", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), date).Return(items, true).Times(1)

		got, err := s.sut.ListAvailable(context.Background(), date, nil)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("cache miss loads from store and fills the cache", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), date).Return(nil, false).Times(1)
		s.mockStore.EXPECT().FindAvailabilityByDate(gomock.Any(), date).Return(items, nil).Times(1)
		s.mockCache.EXPECT().Set(gomock.Any(), date, items).Times(1)

		got, err := s.sut.ListAvailable(context.Background(), date, nil)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("type filter is applied after the cache", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), date).Return(items, true).Times(1)

		filter := "meeting_room"
		got, err := s.sut.ListAvailable(context.Background(), date, &filter)
		s.NoError(err)
		s.Require().Len(got, 1)
		s.Equal("meeting_room", got[0].Type)
	})

	s.Run("unknown type filter yields an empty list, not an error", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), date).Return(items, true).Times(1)

		filter := "submarine"
		got, err := s.sut.ListAvailable(context.Background(), date, &filter)
		s.NoError(err)
		s.Empty(got)
	})

	s.Run("store failure surfaces as ErrDatabaseOperationFailed", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), date).Return(nil, false).Times(1)
		s.mockStore.EXPECT().FindAvailabilityByDate(gomock.Any(), date).
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := s.sut.ListAvailable(context.Background(), date, nil)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
