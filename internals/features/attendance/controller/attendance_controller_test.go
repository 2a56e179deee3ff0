// file: internals/features/attendance/controller/attendance_controller_test.go
package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"absensiku_backend/internals/configs"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	userModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"
	routes "absensiku_backend/internals/route"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, userModel.UserModel, string) {
	t.Helper()

	configs.JWTSecret = "test-secret"
	decimal.MarshalJSONWithoutQuotes = true

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

	u := userModel.UserModel{
		UserName:       "Budi",
		UserEmail:      "budi@example.com",
		UserPassword:   "rahasia-terhash",
		UserHourlyRate: decimal.RequireFromString("1000"),
	}
	require.NoError(t, db.Create(&u).Error)

	claims := jwt.MapClaims{
		"user_id": u.UserID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db, u, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestClockInFlowOverHTTP(t *testing.T) {
	dbtime.SetNowFunc(func() time.Time {
		return time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC) // 09:00 JST
	})
	t.Cleanup(dbtime.ResetNowFunc)

	app, _, _, token := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/u/attendance/clock-in", token,
		`{"time":"09:00"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "09:00:00", data["attendance_clock_in"])
	assert.Equal(t, "2026-06-10", data["attendance_date"])

	code, body = doJSON(t, app, http.MethodPost, "/api/u/attendance/clock-out", token,
		`{"time":"18:00"}`)
	require.Equal(t, http.StatusOK, code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "18:00:00", data["attendance_clock_out"])
	assert.EqualValues(t, 9, data["attendance_total_hours"])
}

func TestClockOutWithoutRecordReturnsDomainCode(t *testing.T) {
	dbtime.SetNowFunc(func() time.Time {
		return time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	})
	t.Cleanup(dbtime.ResetNowFunc)

	app, _, _, token := newTestApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/u/attendance/clock-out", token, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "NO_CLOCK_IN_RECORD", body["error_code"])
}

func TestRequestWithoutTokenRejected(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/u/attendance/today", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
