// file: internals/features/attendance/service/break_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

const (
	warnBreakMinutes    = 24 * 60 // istirahat > 24 jam: sinyal data aneh
	extremeBreakMinutes = 48 * 60 // > 48 jam: hampir pasti salah input
)

type BreakService struct {
	DB *gorm.DB
}

func NewBreakService(db *gorm.DB) *BreakService {
	return &BreakService{DB: db}
}

/* ===============================
   MULAI ISTIRAHAT
=============================== */

// StartBreak membuka jendela istirahat baru pada sebuah kehadiran.
// Urutan guard: kehadiran ada → sudah clock-in → belum clock-out →
// tidak ada istirahat lain yang masih terbuka.
func (s *BreakService) StartBreak(ctx context.Context, attendanceID uint, startAt *dbtime.Tod) (*model.BreakTimeModel, error) {
	var out model.BreakTimeModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var att model.AttendanceModel
		if err := tx.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[WARN] StartBreak: kehadiran %d tidak ditemukan", attendanceID)
				return ErrAttendanceNotFound
			}
			return err
		}

		if att.AttendanceClockIn == nil {
			return ErrNotClockedIn
		}
		if att.AttendanceClockOut != nil {
			return ErrAlreadyClockedOut
		}

		var open int64
		if err := tx.Model(&model.BreakTimeModel{}).
			Where("break_time_attendance_id = ? AND break_time_end IS NULL", attendanceID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			log.Printf("[WARN] StartBreak: kehadiran %d masih punya istirahat terbuka", attendanceID)
			return ErrBreakNotEnded
		}

		start := dbtime.NowTod()
		if startAt != nil {
			start = *startAt
		}

		out = model.BreakTimeModel{
			BreakTimeAttendanceID: attendanceID,
			BreakTimeStart:        start,
			BreakTimeDuration:     0,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Istirahat dimulai untuk kehadiran %d jam %s", attendanceID, out.BreakTimeStart)
	return &out, nil
}

/* ===============================
   AKHIRI ISTIRAHAT
=============================== */

// EndBreak menutup istirahat yang masih terbuka dan menghitung durasinya.
func (s *BreakService) EndBreak(ctx context.Context, breakID uint, endAt *dbtime.Tod) (*model.BreakTimeModel, error) {
	var out model.BreakTimeModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bt model.BreakTimeModel
		if err := tx.First(&bt, "break_time_id = ?", breakID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[WARN] EndBreak: istirahat %d tidak ditemukan", breakID)
				return ErrBreakNotFound
			}
			return err
		}

		if bt.BreakTimeEnd != nil {
			return ErrBreakAlreadyEnded
		}

		end := dbtime.NowTod()
		if endAt != nil {
			end = *endAt
		}

		// Perbandingan jam dinding, bukan instant: jam selesai yang lebih
		// kecil dari jam mulai ditolak di endpoint ini. Istirahat lintas
		// tengah malam hanya bisa masuk lewat edit manual.
		if end.Time.Before(bt.BreakTimeStart.Time) {
			log.Printf("[WARN] EndBreak: istirahat %d, %s < %s", breakID, end, bt.BreakTimeStart)
			return ErrInvalidEndTime
		}

		bt.BreakTimeEnd = &end
		s.CalculateDuration(tx, &bt)

		if bt.BreakTimeDuration > warnBreakMinutes {
			log.Printf("[WARN] Istirahat %d sangat panjang: %d menit", breakID, bt.BreakTimeDuration)
		}

		if err := tx.Save(&bt).Error; err != nil {
			return err
		}
		out = bt
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Istirahat %d selesai jam %s (durasi %d menit)", breakID, out.BreakTimeEnd, out.BreakTimeDuration)
	return &out, nil
}

/* ===============================
   HITUNG DURASI
=============================== */

// CalculateDuration mengisi ulang break_time_duration (menit).
// Tidak punya jalur error: data yang belum lengkap menghasilkan 0,
// bukan kegagalan. Dipanggil juga lepas dari EndBreak saat edit manual.
func (s *BreakService) CalculateDuration(tx *gorm.DB, bt *model.BreakTimeModel) {
	if bt.BreakTimeEnd == nil || bt.BreakTimeStart.IsZero() {
		bt.BreakTimeDuration = 0
		return
	}

	var att model.AttendanceModel
	if err := tx.First(&att, "attendance_id = ?", bt.BreakTimeAttendanceID).Error; err != nil {
		log.Printf("[ERROR] CalculateDuration: kehadiran %d untuk istirahat %d tidak ditemukan: %v",
			bt.BreakTimeAttendanceID, bt.BreakTimeID, err)
		bt.BreakTimeDuration = 0
		return
	}

	d := breakDurationMinutes(att.Date(), bt.BreakTimeStart, bt.BreakTimeEnd)
	if d > extremeBreakMinutes {
		log.Printf("[WARN] Istirahat %d durasinya ekstrem: %d menit", bt.BreakTimeID, d)
	}
	bt.BreakTimeDuration = d
}

// breakDurationMinutes: durasi istirahat dalam menit (floor ke menit).
// Jam selesai yang jatuh sebelum jam mulai dianggap lewat tengah malam
// (+24 jam). Hasil tidak pernah negatif.
func breakDurationMinutes(date time.Time, start dbtime.Tod, end *dbtime.Tod) int {
	if end == nil {
		return 0
	}

	s := dbtime.Combine(date, start)
	e := dbtime.Combine(date, *end)
	if e.Before(s) {
		e = e.Add(24 * time.Hour)
	}
	if !e.After(s) {
		return 0
	}
	return int(e.Sub(s).Seconds()) / 60
}
