// file: internals/helpers/dbtime/dbtime_test.go
package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowFollowsInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 6, 10, 0, 30, 0, 0, time.UTC) // 09:30 di Asia/Tokyo
	SetNowFunc(func() time.Time { return fixed })
	t.Cleanup(ResetNowFunc)

	n := Now()
	assert.Equal(t, 9, n.Hour())
	assert.Equal(t, 30, n.Minute())

	today := Today()
	assert.Equal(t, 2026, today.Year())
	assert.Equal(t, time.June, today.Month())
	assert.Equal(t, 10, today.Day())
	assert.Equal(t, 0, today.Hour())

	assert.Equal(t, "09:30:00", NowTod().String())
}

func TestCombine(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, Location())
	got := Combine(date, MustParse("18:05:09"))

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 5, got.Minute())
	assert.Equal(t, 9, got.Second())
}

func TestMonthRange(t *testing.T) {
	first, next := MonthRange(2026, 12)
	assert.Equal(t, time.December, first.Month())
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 2027, next.Year())
	assert.Equal(t, time.January, next.Month())
}

func TestYearRange(t *testing.T) {
	first, next := YearRange(2026)
	assert.Equal(t, time.January, first.Month())
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 2027, next.Year())
	assert.Equal(t, time.January, next.Month())
}
