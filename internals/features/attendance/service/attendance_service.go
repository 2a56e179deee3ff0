// file: internals/features/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"absensiku_backend/internals/features/attendance/model"
	userModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

/* ===============================
   CLOCK IN
=============================== */

// ClockIn mencatat jam masuk untuk hari ini (timezone organisasi).
// Clock-in berulang menimpa jam masuk yang lama — bukan error, cuma
// warning, supaya tap ganda di device tidak bikin gagal.
func (s *AttendanceService) ClockIn(ctx context.Context, userID uint, at *dbtime.Tod) (*model.AttendanceModel, error) {
	var out model.AttendanceModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var usr userModel.UserModel
		if err := tx.First(&usr, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		today := dbtime.Today()
		cur := dbtime.NowTod()
		if at != nil {
			cur = *at
		}

		var att model.AttendanceModel
		err := tx.First(&att,
			"attendance_user_id = ? AND attendance_date = ?", userID, datatypes.Date(today)).Error
		switch {
		case err == nil:
			if att.AttendanceClockIn != nil {
				log.Printf("[WARN] User %d sudah clock-in hari ini, jam masuk ditimpa", userID)
			}
			att.AttendanceClockIn = &cur
			s.CalculateTotals(tx, &att)
			if err := tx.Save(&att).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			att = model.AttendanceModel{
				AttendanceUserID:      userID,
				AttendanceDate:        datatypes.Date(today),
				AttendanceClockIn:     &cur,
				AttendanceTotalHours:  decimal.Zero,
				AttendanceTotalAmount: decimal.Zero,
			}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
		default:
			return err
		}

		out = att
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] User %d clock-in jam %s", userID, out.AttendanceClockIn)
	return &out, nil
}

/* ===============================
   CLOCK OUT
=============================== */

// ClockOut mencatat jam pulang pada kehadiran hari ini lalu menghitung
// ulang total jam kerja dan upah.
func (s *AttendanceService) ClockOut(ctx context.Context, userID uint, at *dbtime.Tod) (*model.AttendanceModel, error) {
	var out model.AttendanceModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		today := dbtime.Today()
		cur := dbtime.NowTod()
		if at != nil {
			cur = *at
		}

		var att model.AttendanceModel
		if err := tx.First(&att,
			"attendance_user_id = ? AND attendance_date = ?", userID, datatypes.Date(today)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoClockInRecord
			}
			return err
		}
		if att.AttendanceClockIn == nil {
			return ErrNotClockedIn
		}

		att.AttendanceClockOut = &cur
		s.CalculateTotals(tx, &att)

		if err := tx.Save(&att).Error; err != nil {
			return err
		}
		out = att
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] User %d clock-out jam %s (%s jam, %s)",
		userID, out.AttendanceClockOut, out.AttendanceTotalHours, out.AttendanceTotalAmount)
	return &out, nil
}

/* ===============================
   REKALKULASI TOTAL
=============================== */

// CalculateTotals menghitung ulang total jam kerja dan upah sebuah
// kehadiran. Wajib dipanggil setelah SETIAP perubahan jam masuk, jam
// pulang, atau set istirahat. No-op kalau salah satu jam belum ada
// (hari yang masih berjalan belum punya total final).
func (s *AttendanceService) CalculateTotals(tx *gorm.DB, att *model.AttendanceModel) {
	if att.AttendanceClockIn == nil || att.AttendanceClockOut == nil {
		return
	}

	date := att.Date()
	in := dbtime.Combine(date, *att.AttendanceClockIn)
	out := dbtime.Combine(date, *att.AttendanceClockOut)

	// Shift lewat tengah malam: jam pulang "lebih kecil" dari jam masuk.
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	totalMinutes := int(out.Sub(in).Seconds()) / 60

	var breaks []model.BreakTimeModel
	if err := tx.Where("break_time_attendance_id = ?", att.AttendanceID).Find(&breaks).Error; err != nil {
		log.Printf("[ERROR] CalculateTotals: gagal ambil istirahat kehadiran %d: %v", att.AttendanceID, err)
		return
	}
	totalBreakMinutes := 0
	for _, b := range breaks {
		totalBreakMinutes += b.BreakTimeDuration
	}

	// Menit kerja bisa negatif kalau total istirahat melebihi rentang
	// kerja; nilainya dibiarkan apa adanya (beda dengan durasi istirahat
	// yang di-clamp ke 0).
	workMinutes := totalMinutes - totalBreakMinutes
	workHours := decimal.NewFromInt(int64(workMinutes)).Div(decimal.NewFromInt(60))

	amount := decimal.Zero
	var usr userModel.UserModel
	if err := tx.First(&usr, "user_id = ?", att.AttendanceUserID).Error; err != nil {
		log.Printf("[WARN] CalculateTotals: user %d tidak ditemukan, upah di-set 0", att.AttendanceUserID)
	} else {
		amount = workHours.Mul(usr.UserHourlyRate)
	}

	att.AttendanceTotalHours = workHours.Round(2)
	att.AttendanceTotalAmount = amount.Round(2)

	log.Printf("[INFO] Total kehadiran %d: %s jam, %s",
		att.AttendanceID, att.AttendanceTotalHours, att.AttendanceTotalAmount)
}

/* ===============================
   REKONSILIASI ISTIRAHAT (BULK)
=============================== */

// BreakPatch: satu entri pada edit-set istirahat. ID > 0 dan cocok
// dengan baris lama = update in place; selain itu insert baru.
type BreakPatch struct {
	ID    uint
	Start *dbtime.Tod
	End   *dbtime.Tod
}

// UpdateBreakTimes mengganti SELURUH set istirahat sebuah kehadiran
// dalam satu panggilan: list kosong menghapus semua, baris lama yang
// tidak muncul lagi ikut terhapus. Durasi dihitung langsung di sini.
// TIDAK memanggil CalculateTotals — itu tanggung jawab pemanggil.
func (s *AttendanceService) UpdateBreakTimes(tx *gorm.DB, att *model.AttendanceModel, patches []BreakPatch) error {
	if len(patches) == 0 {
		return tx.Where("break_time_attendance_id = ?", att.AttendanceID).
			Delete(&model.BreakTimeModel{}).Error
	}

	var existing []model.BreakTimeModel
	if err := tx.Where("break_time_attendance_id = ?", att.AttendanceID).Find(&existing).Error; err != nil {
		return err
	}
	byID := make(map[uint]*model.BreakTimeModel, len(existing))
	for i := range existing {
		byID[existing[i].BreakTimeID] = &existing[i]
	}

	retained := make(map[uint]bool, len(patches))
	date := att.Date()

	for _, p := range patches {
		if p.Start == nil || p.End == nil {
			log.Printf("[WARN] UpdateBreakTimes: entri tanpa jam mulai/selesai dilewati (id=%d)", p.ID)
			continue
		}

		dur := breakDurationMinutes(date, *p.Start, p.End)

		if cur, ok := byID[p.ID]; p.ID > 0 && ok {
			cur.BreakTimeStart = *p.Start
			cur.BreakTimeEnd = p.End
			cur.BreakTimeDuration = dur
			if err := tx.Save(cur).Error; err != nil {
				return err
			}
			retained[p.ID] = true
		} else {
			nb := model.BreakTimeModel{
				BreakTimeAttendanceID: att.AttendanceID,
				BreakTimeStart:        *p.Start,
				BreakTimeEnd:          p.End,
				BreakTimeDuration:     dur,
			}
			if err := tx.Create(&nb).Error; err != nil {
				return err
			}
		}
	}

	// Baris lama yang tidak di-retain = dihapus user di form edit.
	for i := range existing {
		if !retained[existing[i].BreakTimeID] {
			if err := tx.Delete(&model.BreakTimeModel{},
				"break_time_id = ?", existing[i].BreakTimeID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
