// file: internals/features/attendance/service/calendar_test.go
package service

import (
	"context"
	"testing"
	"time"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedAttendanceOn(t *testing.T, db *gorm.DB, userID uint, year, month, day int, hours, amount string) model.AttendanceModel {
	t.Helper()
	att := model.AttendanceModel{
		AttendanceUserID:      userID,
		AttendanceDate:        datatypes.Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, dbtime.Location())),
		AttendanceClockIn:     todPtr("09:00"),
		AttendanceClockOut:    todPtr("18:00"),
		AttendanceTotalHours:  decimal.RequireFromString(hours),
		AttendanceTotalAmount: decimal.RequireFromString(amount),
	}
	require.NoError(t, db.Create(&att).Error)
	return att
}

// Juni 2026 mulai hari Senin: 30 hari, 8 hari akhir pekan, 22 hari kerja.
func TestMonthlyCalendar(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)

	for d := 1; d <= 5; d++ {
		seedAttendanceOn(t, db, u.UserID, 2026, 6, d, "8", "8000")
	}

	days, err := svc.GetMonthlyCalendar(db, u.UserID, 2026, 6)
	require.NoError(t, err)
	require.Len(t, days, 30)

	// 1 Juni = Senin (dow 0).
	assert.Equal(t, 0, days[0].DayOfWeek)
	assert.False(t, days[0].IsWeekend)
	assert.Equal(t, constants.CalendarStatusPresent, days[0].Status)
	require.NotNil(t, days[0].Attendance)

	// 6 Juni = Sabtu.
	assert.Equal(t, 5, days[5].DayOfWeek)
	assert.True(t, days[5].IsWeekend)
	assert.Equal(t, constants.CalendarStatusWeekend, days[5].Status)

	// 8 Juni = Senin tanpa catatan.
	assert.Equal(t, constants.CalendarStatusAbsent, days[7].Status)
	assert.Nil(t, days[7].Attendance)
}

func TestMonthlyCalendarSummary(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)

	for d := 1; d <= 5; d++ {
		seedAttendanceOn(t, db, u.UserID, 2026, 6, d, "8", "8000")
	}

	sum, err := svc.GetMonthlyCalendarSummary(context.Background(), u.UserID, 2026, 6)
	require.NoError(t, err)

	assert.Equal(t, 22, sum.TotalWorkingDays)
	assert.Equal(t, 5, sum.TotalPresentDays)
	// 5/22 hari = 22.73% (bulat 2 desimal).
	assert.True(t, sum.AttendanceRate.Equal(decimal.RequireFromString("22.73")),
		"rate = %s", sum.AttendanceRate)
	assert.True(t, sum.TotalHours.Equal(decimal.RequireFromString("40")))
	assert.True(t, sum.TotalAmount.Equal(decimal.RequireFromString("40000")))
}

// Akhir pekan menang atas status lain meski ada catatan kehadiran.
func TestWeekendStatusWins(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "1000")
	svc := NewAttendanceService(db)

	seedAttendanceOn(t, db, u.UserID, 2026, 6, 6, "4", "4000") // Sabtu

	sum, err := svc.GetMonthlyCalendarSummary(context.Background(), u.UserID, 2026, 6)
	require.NoError(t, err)

	assert.Equal(t, constants.CalendarStatusWeekend, sum.Days[5].Status)
	assert.Equal(t, 0, sum.TotalPresentDays)
	// Jam & upahnya tetap dihitung di total.
	assert.True(t, sum.TotalHours.Equal(decimal.RequireFromString("4")))
}
