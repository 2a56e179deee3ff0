// file: internals/features/attendance/service/calendar.go
package service

import (
	"context"
	"time"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CalendarDay: satu tanggal pada kalender bulanan, ada catatan kehadiran
// maupun tidak. DayOfWeek: Senin=0 .. Minggu=6.
type CalendarDay struct {
	Date       time.Time
	DayOfWeek  int
	IsWeekend  bool
	IsHoliday  bool // selalu false — kalender libur belum diintegrasikan
	Status     string
	Attendance *model.AttendanceModel
}

type CalendarSummary struct {
	Year             int
	Month            int
	TotalWorkingDays int
	TotalPresentDays int
	AttendanceRate   decimal.Decimal
	TotalHours       decimal.Decimal
	TotalAmount      decimal.Decimal
	Days             []CalendarDay
}

// GetMonthlyCalendar menyandingkan setiap tanggal dalam sebulan dengan
// catatan kehadiran user (maksimal satu per tanggal, diambil sekali
// query). Hasil urut tanggal naik, panjangnya = jumlah hari di bulan itu.
func (s *AttendanceService) GetMonthlyCalendar(tx *gorm.DB, userID uint, year, month int) ([]CalendarDay, error) {
	loc := dbtime.Location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)
	daysInMonth := next.AddDate(0, 0, -1).Day()

	var rows []model.AttendanceModel
	if err := tx.
		Where("attendance_user_id = ? AND attendance_date >= ? AND attendance_date < ?",
			userID, datatypes.Date(first), datatypes.Date(next)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[int]*model.AttendanceModel, len(rows))
	for i := range rows {
		byDay[rows[i].Date().Day()] = &rows[i]
	}

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		cur := time.Date(year, time.Month(month), d, 0, 0, 0, 0, loc)
		dow := (int(cur.Weekday()) + 6) % 7 // Senin=0 .. Minggu=6
		weekend := dow >= constants.WeekdaySaturday

		att := byDay[d]
		status := constants.CalendarStatusAbsent
		switch {
		case weekend:
			status = constants.CalendarStatusWeekend
		case att != nil && att.AttendanceClockIn != nil:
			status = constants.CalendarStatusPresent
		}

		days = append(days, CalendarDay{
			Date:       cur,
			DayOfWeek:  dow,
			IsWeekend:  weekend,
			IsHoliday:  false,
			Status:     status,
			Attendance: att,
		})
	}
	return days, nil
}

// GetMonthlyCalendarSummary membungkus kalender bulanan dengan agregat:
// hari kerja, hari hadir, persentase kehadiran, serta total jam & upah.
func (s *AttendanceService) GetMonthlyCalendarSummary(ctx context.Context, userID uint, year, month int) (*CalendarSummary, error) {
	days, err := s.GetMonthlyCalendar(s.DB.WithContext(ctx), userID, year, month)
	if err != nil {
		return nil, err
	}

	sum := CalendarSummary{
		Year:           year,
		Month:          month,
		AttendanceRate: decimal.Zero,
		TotalHours:     decimal.Zero,
		TotalAmount:    decimal.Zero,
		Days:           days,
	}

	for i := range days {
		d := &days[i]
		if !d.IsWeekend && !d.IsHoliday {
			sum.TotalWorkingDays++
		}
		if d.Status == constants.CalendarStatusPresent {
			sum.TotalPresentDays++
		}
		if d.Attendance != nil {
			sum.TotalHours = sum.TotalHours.Add(d.Attendance.AttendanceTotalHours)
			sum.TotalAmount = sum.TotalAmount.Add(d.Attendance.AttendanceTotalAmount)
		}
	}

	// Jaga pembagian nol: bulan tanpa hari kerja → rate 0.
	if sum.TotalWorkingDays > 0 {
		sum.AttendanceRate = decimal.NewFromInt(int64(sum.TotalPresentDays * 100)).
			Div(decimal.NewFromInt(int64(sum.TotalWorkingDays))).
			Round(2)
	}
	return &sum, nil
}
