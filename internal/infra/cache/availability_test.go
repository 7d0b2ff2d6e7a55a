//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"slotdesk/internal/domain/booking"
	"slotdesk/internal/infra/cache"
	"slotdesk/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type AvailabilityCacheTestSuite struct {
	suite.Suite
	redis *miniredis.Miniredis
	sut   queries.AvailabilityCache
	date  booking.Date
}

func (s *AvailabilityCacheTestSuite) SetupTest() {
	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.sut = cache.NewAvailabilityCache(client, 30*time.Second)
	s.date = booking.NewDate(2026, time.September, 15)
}

func TestAvailabilityCacheSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityCacheTestSuite))
}

func (s *AvailabilityCacheTestSuite) items() []*queries.ResourceAvailabilityView {
	return []*queries.ResourceAvailabilityView{
		{ResourceID: 1, Name: "Desk 1", Type: "desk", MorningFree: true, AfternoonFree: false},
		{ResourceID: 2, Name: "Room A", Type: "meeting_room", MorningFree: false, AfternoonFree: true},
	}
}

func (s *AvailabilityCacheTestSuite) TestRoundTrip() {
	ctx := context.Background()

	_, ok := s.sut.Get(ctx, s.date)
	s.False(ok, "empty cache should miss")

	s.sut.Set(ctx, s.date, s.items())

	got, ok := s.sut.Get(ctx, s.date)
	s.Require().True(ok)
	s.Len(got, 2)
	s.Equal(int64(1), got[0].ResourceID)
	s.True(got[0].MorningFree)
	s.False(got[0].AfternoonFree)
}

func (s *AvailabilityCacheTestSuite) TestKeysAreScopedByDate() {
	ctx := context.Background()
	otherDate := booking.NewDate(2026, time.September, 16)

	s.sut.Set(ctx, s.date, s.items())

	_, ok := s.sut.Get(ctx, otherDate)
	s.False(ok, "entries of another date must not leak")
}

func (s *AvailabilityCacheTestSuite) TestInvalidate() {
	ctx := context.Background()

	s.sut.Set(ctx, s.date, s.items())
	s.sut.Invalidate(ctx, s.date)

	_, ok := s.sut.Get(ctx, s.date)
	s.False(ok)
}

func (s *AvailabilityCacheTestSuite) TestEntryExpiresByTTL() {
	ctx := context.Background()

	s.sut.Set(ctx, s.date, s.items())
	s.redis.FastForward(31 * time.Second)

	_, ok := s.sut.Get(ctx, s.date)
	s.False(ok)
}

func (s *AvailabilityCacheTestSuite) TestCorruptEntryIsDropped() {
	ctx := context.Background()

	s.Require().NoError(s.redis.Set("availability:2026-09-15", "not-json"))

	_, ok := s.sut.Get(ctx, s.date)
	s.False(ok)
	s.False(s.redis.Exists("availability:2026-09-15"), "corrupt entry should be deleted")
}
