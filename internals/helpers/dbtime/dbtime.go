// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"log"
	"os"
	"sync"
	"time"
)

// Jam kanonik organisasi. Seluruh default "pakai waktu sekarang" di aplikasi
// lewat paket ini, jadi keseluruhan sistem bisa dites dengan jam tetap
// (SetNowFunc). Timezone tunggal untuk semua user, bukan timezone device.

const DefaultTimezone = "Asia/Tokyo"

var (
	locOnce sync.Once
	orgLoc  *time.Location

	nowMu sync.RWMutex
	nowFn = time.Now
)

// Location: *time.Location organisasi.
// 1) ENV ORG_TIMEZONE (mis. "Asia/Tokyo")
// 2) Fallback: Asia/Tokyo
// 3) Fallback terakhir: zona tetap UTC+9
func Location() *time.Location {
	locOnce.Do(func() {
		tz := os.Getenv("ORG_TIMEZONE")
		if tz == "" {
			tz = DefaultTimezone
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("[WARN] ORG_TIMEZONE %q tidak valid (%v), pakai zona tetap UTC+9", tz, err)
			loc = time.FixedZone("JST", 9*60*60)
		}
		orgLoc = loc
	})
	return orgLoc
}

// SetNowFunc mengganti sumber "sekarang" — hanya untuk test.
func SetNowFunc(fn func() time.Time) {
	nowMu.Lock()
	nowFn = fn
	nowMu.Unlock()
}

// ResetNowFunc mengembalikan sumber waktu ke time.Now.
func ResetNowFunc() {
	SetNowFunc(time.Now)
}

// Now: waktu sekarang di timezone organisasi.
func Now() time.Time {
	nowMu.RLock()
	fn := nowFn
	nowMu.RUnlock()
	return fn().In(Location())
}

// Today: tengah malam hari ini di timezone organisasi.
func Today() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, Location())
}

// NowTod: jam dinding sekarang.
func NowTod() Tod {
	return From(Now())
}

// MonthRange: [awal bulan, awal bulan berikutnya) di timezone organisasi.
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, Location())
	return first, first.AddDate(0, 1, 0)
}

// YearRange: [1 Januari, 1 Januari tahun berikutnya) di timezone organisasi.
func YearRange(year int) (time.Time, time.Time) {
	first := time.Date(year, 1, 1, 0, 0, 0, 0, Location())
	return first, first.AddDate(1, 0, 0)
}

// Combine menggabungkan tanggal + jam dinding menjadi satu instant di
// timezone organisasi. Jam yang secara logika jatuh setelah tengah malam
// dikoreksi +24 jam oleh pemanggil (lihat perhitungan di service kehadiran).
func Combine(date time.Time, t Tod) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, Location())
}
