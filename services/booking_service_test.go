package services

import (
	"testing"
	"time"

	"hsg-reporting/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingConflictAndTouchingBoundary(t *testing.T) {
	db := newTestDB(t)
	seedBookingFixtures(t, db)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newBookingService(db, clk)

	at := func(h, m int) time.Time { return time.Date(2025, 1, 10, h, m, 0, 0, zurich) }

	first, err := svc.Create("ROOM_A", "Jane", at(10, 0), at(11, 0))
	require.NoError(t, err)
	require.NotNil(t, first)

	// ทับช่วงเดิม → conflict
	_, err = svc.Create("ROOM_A", "Joe", at(10, 30), at(11, 30))
	assert.ErrorIs(t, err, ErrBookingConflict)

	// ชนขอบพอดี [11:00, 12:00) ไม่ถือว่าทับ
	second, err := svc.Create("ROOM_A", "Joe", at(11, 0), at(12, 0))
	require.NoError(t, err)
	require.NotNil(t, second)

	// invariant: ไม่มีคู่ booking ของ asset เดียวกันที่ทับกันหลงเหลือใน ledger
	bookings, err := svc.ListBookings()
	require.NoError(t, err)
	for i := range bookings {
		for j := i + 1; j < len(bookings); j++ {
			a, b := bookings[i], bookings[j]
			if a.AssetID != b.AssetID {
				continue
			}
			noOverlap := !a.StartTime.Before(b.EndTime) || !b.StartTime.Before(a.EndTime)
			assert.True(t, noOverlap, "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestIsAvailableAroundExistingBooking(t *testing.T) {
	db := newTestDB(t)
	seedBookingFixtures(t, db)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newBookingService(db, clk)

	at := func(h, m int) time.Time { return time.Date(2025, 1, 10, h, m, 0, 0, zurich) }

	_, err := svc.Create("ROOM_A", "Jane", at(10, 0), at(11, 0))
	require.NoError(t, err)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", at(10, 0), at(11, 0), false},
		{"straddles start", at(9, 30), at(10, 30), false},
		{"straddles end", at(10, 30), at(11, 30), false},
		{"contained", at(10, 15), at(10, 45), false},
		{"touches end", at(11, 0), at(12, 0), true},
		{"touches start", at(9, 0), at(10, 0), true},
		{"fully before", at(8, 0), at(9, 0), true},
		{"fully after", at(13, 0), at(14, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.IsAvailable("ROOM_A", tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextAvailableTime(t *testing.T) {
	db := newTestDB(t)
	seedBookingFixtures(t, db)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newBookingService(db, clk)

	at := func(h int) time.Time { return time.Date(2025, 1, 10, h, 0, 0, 0, zurich) }

	_, err := svc.Create("ROOM_A", "Jane", at(10), at(11))
	require.NoError(t, err)
	_, err = svc.Create("ROOM_A", "Joe", at(11), at(12))
	require.NoError(t, err)

	next, err := svc.NextAvailableTime("ROOM_A")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, at(11).Equal(*next))

	// ไม่เคยถูกจอง → nil
	next, err = svc.NextAvailableTime("LAPTOP_1")
	require.NoError(t, err)
	assert.Nil(t, next)

	// booking หมดอายุแล้วทั้งหมด → nil
	clk.Set(time.Date(2025, 1, 10, 13, 0, 0, 0, zurich))
	next, err = svc.NextAvailableTime("ROOM_A")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestBookingUnknownAsset(t *testing.T) {
	db := newTestDB(t)
	seedBookingFixtures(t, db)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newBookingService(db, clk)

	start := time.Date(2025, 1, 10, 10, 0, 0, 0, zurich)
	end := start.Add(time.Hour)

	_, err := svc.Create("GHOST_1", "Jane", start, end)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.IsAvailable("GHOST_1", start, end)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.NextAvailableTime("GHOST_1")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	seedBookingFixtures(t, db)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newBookingService(db, clk)

	at := func(h int) time.Time { return time.Date(2025, 1, 10, h, 0, 0, 0, zurich) }

	_, err := svc.Create("ROOM_A", "Jane", at(11), at(10))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = svc.Create("ROOM_A", "Jane", at(10), at(10))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// จองย้อนหลังไม่ได้
	_, err = svc.Create("ROOM_A", "Jane", at(8), at(10))
	assert.ErrorIs(t, err, ErrStartInPast)

	_, err = svc.Create("ROOM_A", "   ", at(10), at(11))
	assert.ErrorIs(t, err, ErrRequesterRequired)

	var n int64
	require.NoError(t, db.Model(&entity.Booking{}).Count(&n).Error)
	assert.Zero(t, n)
}
