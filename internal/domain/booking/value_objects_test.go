//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotdesk/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("有効な日付", func(t *testing.T) {
		d, err := booking.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("不正な形式", func(t *testing.T) {
		for _, s := range []string{"", "2026/09/15", "15-09-2026", "2026-13-01", "not-a-date"} {
			_, err := booking.ParseDate(s)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, "input: %s", s)
		}
	})
}

func TestSlot(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	date := booking.NewDate(2026, time.September, 15)

	t.Run("有効な値のみ受け付ける", func(t *testing.T) {
		for _, v := range []string{"FM", "EM"} {
			slot, err := booking.NewSlot(v)
			require.NoError(t, err)
			assert.Equal(t, v, slot.String())
		}

		for _, v := range []string{"", "fm", "AM", "PM", "MORNING"} {
			_, err := booking.NewSlot(v)
			assert.ErrorIs(t, err, booking.ErrInvalidSlot, "input: %s", v)
		}
	})

	t.Run("スロットの開始と終了", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, time.September, 15, 8, 0, 0, 0, tokyo), booking.SlotMorning.StartOn(date, tokyo))
		assert.Equal(t, time.Date(2026, time.September, 15, 12, 0, 0, 0, tokyo), booking.SlotMorning.EndOn(date, tokyo))
		assert.Equal(t, time.Date(2026, time.September, 15, 13, 0, 0, 0, tokyo), booking.SlotAfternoon.StartOn(date, tokyo))
		assert.Equal(t, time.Date(2026, time.September, 15, 17, 0, 0, 0, tokyo), booking.SlotAfternoon.EndOn(date, tokyo))
	})
}

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	d := booking.DateOf(time.Date(2026, time.September, 15, 23, 30, 0, 0, tokyo))
	assert.Equal(t, "2026-09-15", d.String())
}
