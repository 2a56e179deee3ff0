// file: internals/features/attendance/service/break_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakDurationMinutes(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, dbtime.Location())

	cases := []struct {
		name  string
		start string
		end   *dbtime.Tod
		want  int
	}{
		{"belum selesai", "12:00", nil, 0},
		{"satu jam", "12:00", todPtr("13:00"), 60},
		{"jam sama", "12:00", todPtr("12:00"), 0},
		{"detik dibuang (floor)", "12:00:30", todPtr("12:01:00"), 0},
		{"lintas tengah malam", "23:30", todPtr("00:15"), 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := breakDurationMinutes(date, dbtime.MustParse(tc.start), tc.end)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStartBreakGuards(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	brk := NewBreakService(db)

	// Kehadiran tidak ada.
	_, err := brk.StartBreak(context.Background(), 999, nil)
	assert.ErrorIs(t, err, ErrAttendanceNotFound)

	// Ada baris tapi belum clock-in.
	empty := model.AttendanceModel{
		AttendanceUserID: u.UserID,
		AttendanceDate:   todayDate(),
	}
	require.NoError(t, db.Create(&empty).Error)
	_, err = brk.StartBreak(context.Background(), empty.AttendanceID, nil)
	assert.ErrorIs(t, err, ErrNotClockedIn)

	// Sudah clock-out.
	empty.AttendanceClockIn = todPtr("09:00")
	empty.AttendanceClockOut = todPtr("18:00")
	require.NoError(t, db.Save(&empty).Error)
	_, err = brk.StartBreak(context.Background(), empty.AttendanceID, nil)
	assert.ErrorIs(t, err, ErrAlreadyClockedOut)
}

func TestStartBreakRejectsSecondOpenBreak(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)
	brk := NewBreakService(db)

	att, err := svc.ClockIn(context.Background(), u.UserID, todPtr("09:00"))
	require.NoError(t, err)

	_, err = brk.StartBreak(context.Background(), att.AttendanceID, todPtr("12:00"))
	require.NoError(t, err)

	_, err = brk.StartBreak(context.Background(), att.AttendanceID, todPtr("12:30"))
	assert.ErrorIs(t, err, ErrBreakNotEnded)
}

func TestEndBreak(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)
	brk := NewBreakService(db)

	att, err := svc.ClockIn(context.Background(), u.UserID, todPtr("09:00"))
	require.NoError(t, err)

	bt, err := brk.StartBreak(context.Background(), att.AttendanceID, todPtr("12:00"))
	require.NoError(t, err)

	out, err := brk.EndBreak(context.Background(), bt.BreakTimeID, todPtr("12:45"))
	require.NoError(t, err)
	require.NotNil(t, out.BreakTimeEnd)
	assert.Equal(t, "12:45:00", out.BreakTimeEnd.String())
	assert.Equal(t, 45, out.BreakTimeDuration)

	// Dua kali end → error.
	_, err = brk.EndBreak(context.Background(), bt.BreakTimeID, todPtr("13:00"))
	assert.ErrorIs(t, err, ErrBreakAlreadyEnded)
}

func TestEndBreakNotFound(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	brk := NewBreakService(db)

	_, err := brk.EndBreak(context.Background(), 12345, nil)
	assert.ErrorIs(t, err, ErrBreakNotFound)
}

// Jam selesai lebih kecil dari jam mulai ditolak; penutupan lintas
// tengah malam hanya lewat edit manual.
func TestEndBreakRejectsEarlierWallClock(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)
	brk := NewBreakService(db)

	att, err := svc.ClockIn(context.Background(), u.UserID, todPtr("09:00"))
	require.NoError(t, err)

	bt, err := brk.StartBreak(context.Background(), att.AttendanceID, todPtr("23:30"))
	require.NoError(t, err)

	_, err = brk.EndBreak(context.Background(), bt.BreakTimeID, todPtr("00:15"))
	assert.ErrorIs(t, err, ErrInvalidEndTime)
}

func TestCalculateDurationIncompleteIsZero(t *testing.T) {
	freezeClock(t, fixedMorning)
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)
	brk := NewBreakService(db)

	att, err := svc.ClockIn(context.Background(), u.UserID, todPtr("09:00"))
	require.NoError(t, err)

	bt := model.BreakTimeModel{
		BreakTimeAttendanceID: att.AttendanceID,
		BreakTimeStart:        *todPtr("12:00"),
		BreakTimeDuration:     99,
	}
	brk.CalculateDuration(db, &bt)
	assert.Equal(t, 0, bt.BreakTimeDuration)
}
