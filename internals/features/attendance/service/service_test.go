// file: internals/features/attendance/service/service_test.go
package service

import (
	"testing"
	"time"

	"absensiku_backend/internals/features/attendance/model"
	userModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
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
	sqlDB.SetMaxOpenConns(1) // :memory: = satu koneksi

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&model.AttendanceModel{},
		&model.BreakTimeModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, rate string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:       "Budi",
		UserEmail:      "budi@example.com",
		UserPassword:   "rahasia-terhash",
		UserHourlyRate: decimal.RequireFromString(rate),
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// freezeClock membekukan jam aplikasi pada sebuah instant UTC.
func freezeClock(t *testing.T, utc time.Time) {
	t.Helper()
	dbtime.SetNowFunc(func() time.Time { return utc })
	t.Cleanup(dbtime.ResetNowFunc)
}

func todayDate() datatypes.Date {
	return datatypes.Date(dbtime.Today())
}

func todPtr(s string) *dbtime.Tod {
	tt := dbtime.MustParse(s)
	return &tt
}
