// file: internals/features/reports/service/report_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	attendanceModel "absensiku_backend/internals/features/attendance/model"
	userModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.BreakTimeModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:       "Sari",
		UserEmail:      "sari@example.com",
		UserPassword:   "rahasia-terhash",
		UserHourlyRate: decimal.RequireFromString("1000"),
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func todPtr(s string) *dbtime.Tod {
	tt := dbtime.MustParse(s)
	return &tt
}

func seedAttendanceOn(t *testing.T, db *gorm.DB, userID uint, year, month, day int, hours, amount string) {
	t.Helper()
	att := attendanceModel.AttendanceModel{
		AttendanceUserID:      userID,
		AttendanceDate:        datatypes.Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, dbtime.Location())),
		AttendanceClockIn:     todPtr("09:00"),
		AttendanceClockOut:    todPtr("18:00"),
		AttendanceTotalHours:  decimal.RequireFromString(hours),
		AttendanceTotalAmount: decimal.RequireFromString(amount),
	}
	require.NoError(t, db.Create(&att).Error)
}

func TestMonthlyReport(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := NewReportService(db)

	seedAttendanceOn(t, db, u.UserID, 2026, 6, 1, "8", "8000")
	seedAttendanceOn(t, db, u.UserID, 2026, 6, 2, "7.5", "7500")
	seedAttendanceOn(t, db, u.UserID, 2026, 6, 15, "4", "4000")
	// Bulan lain: tidak ikut.
	seedAttendanceOn(t, db, u.UserID, 2026, 7, 1, "8", "8000")

	rep, err := svc.GetMonthlyReport(context.Background(), u.UserID, 2026, 6)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalDays)
	assert.True(t, rep.TotalHours.Equal(decimal.RequireFromString("19.5")),
		"total jam = %s", rep.TotalHours)
	assert.True(t, rep.TotalAmount.Equal(decimal.RequireFromString("19500")))
	assert.True(t, rep.AverageHours.Equal(decimal.RequireFromString("6.5")),
		"rata-rata = %s", rep.AverageHours)

	// Rincian urut tanggal naik.
	require.Len(t, rep.Attendances, 3)
	assert.Equal(t, 1, rep.Attendances[0].Date().Day())
	assert.Equal(t, 15, rep.Attendances[2].Date().Day())
}

func TestMonthlyReportEmpty(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := NewReportService(db)

	rep, err := svc.GetMonthlyReport(context.Background(), u.UserID, 2026, 6)
	require.NoError(t, err)

	assert.Equal(t, 0, rep.TotalDays)
	assert.True(t, rep.TotalHours.IsZero())
	assert.True(t, rep.TotalAmount.IsZero())
	assert.True(t, rep.AverageHours.IsZero())
	assert.Empty(t, rep.Attendances)
}

// Hanya bulan dengan catatan yang masuk daftar; grand total tetap terisi.
func TestYearlyReport(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := NewReportService(db)

	seedAttendanceOn(t, db, u.UserID, 2026, 3, 2, "8", "8000")
	seedAttendanceOn(t, db, u.UserID, 2026, 3, 3, "6", "6000")
	seedAttendanceOn(t, db, u.UserID, 2026, 7, 10, "4", "4000")
	// Tahun lain: tidak ikut.
	seedAttendanceOn(t, db, u.UserID, 2025, 3, 2, "8", "8000")

	rep, err := svc.GetYearlyReport(context.Background(), u.UserID, 2026)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalDays)
	assert.True(t, rep.TotalHours.Equal(decimal.RequireFromString("18")),
		"total jam = %s", rep.TotalHours)
	assert.True(t, rep.TotalAmount.Equal(decimal.RequireFromString("18000")))

	require.Len(t, rep.Months, 2)
	assert.Equal(t, 3, rep.Months[0].Month)
	assert.Equal(t, 2, rep.Months[0].TotalDays)
	assert.True(t, rep.Months[0].TotalHours.Equal(decimal.RequireFromString("14")))
	assert.Equal(t, 7, rep.Months[1].Month)
	assert.Equal(t, 1, rep.Months[1].TotalDays)
}

func TestYearlyReportEmpty(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := NewReportService(db)

	rep, err := svc.GetYearlyReport(context.Background(), u.UserID, 2026)
	require.NoError(t, err)

	assert.Equal(t, 0, rep.TotalDays)
	assert.True(t, rep.TotalHours.IsZero())
	assert.True(t, rep.TotalAmount.IsZero())
	assert.Empty(t, rep.Months)
}
