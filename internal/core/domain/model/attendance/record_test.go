package attendance_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("should record a morning check-in as present", func(t *testing.T) {
		id := kernel.NewUUID()
		workerID := kernel.NewUUID()
		now := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)

		r, err := attendance.NewRecord(id, workerID, now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.Worker().IsEqual(workerID))
		assert.Equal(t, attendance.Present, r.Status())
		assert.Equal(t, now, r.CheckInTime())
		assert.True(t, r.IsOpen())
		assert.Nil(t, r.CheckOutTime())
	})

	t.Run("should record a check-in at or after nine as late", func(t *testing.T) {
		atNine := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), atNine)

		require.NoError(t, err)
		assert.Equal(t, attendance.Late, r.Status())
	})

	t.Run("should record a check-in just before nine as present", func(t *testing.T) {
		beforeNine := time.Date(2025, time.March, 10, 8, 59, 59, 0, time.UTC)

		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), beforeNine)

		require.NoError(t, err)
		assert.Equal(t, attendance.Present, r.Status())
	})

	t.Run("should key the record on the calendar day", func(t *testing.T) {
		now := time.Date(2025, time.March, 10, 14, 45, 12, 0, time.UTC)

		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), r.Day())
	})

	t.Run("should fail with invalid worker", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := attendance.NewRecord(kernel.NewUUID(), invalidID, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	stamp := time.Date(2025, time.March, 10, 23, 59, 59, 0, loc)

	day := attendance.DayOf(stamp)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), day)
	assert.Equal(t, loc, day.Location())
}

func TestRecordCheckOut(t *testing.T) {
	checkIn := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should close an open record", func(t *testing.T) {
		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), checkIn)
		require.NoError(t, err)
		checkOut := checkIn.Add(8 * time.Hour)

		require.NoError(t, r.CheckOut(checkOut))
		assert.False(t, r.IsOpen())
		require.NotNil(t, r.CheckOutTime())
		assert.Equal(t, checkOut, *r.CheckOutTime())
	})

	t.Run("should fail checking out twice", func(t *testing.T) {
		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), checkIn)
		require.NoError(t, err)
		require.NoError(t, r.CheckOut(checkIn.Add(8*time.Hour)))

		err = r.CheckOut(checkIn.Add(9 * time.Hour))

		require.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})

	t.Run("should fail checking out before check-in", func(t *testing.T) {
		r, err := attendance.NewRecord(kernel.NewUUID(), kernel.NewUUID(), checkIn)
		require.NoError(t, err)

		err = r.CheckOut(checkIn.Add(-time.Minute))

		require.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
		assert.True(t, r.IsOpen())
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should restore a closed record", func(t *testing.T) {
		checkIn := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
		checkOut := checkIn.Add(8 * time.Hour)

		r, err := attendance.RestoreRecord(
			kernel.NewUUID(), kernel.NewUUID(),
			attendance.DayOf(checkIn), checkIn, &checkOut, attendance.Present,
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.False(t, r.IsOpen())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		checkIn := time.Now().UTC()

		r, err := attendance.RestoreRecord(
			kernel.NewUUID(), kernel.NewUUID(),
			attendance.DayOf(checkIn), checkIn, nil, attendance.Unknown,
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}
