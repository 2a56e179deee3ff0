// file: internals/features/reports/service/report_service.go
package service

import (
	"context"

	attendanceModel "absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// MonthlyReport: rekap satu bulan plus rincian harian (urut tanggal naik).
type MonthlyReport struct {
	Year         int
	Month        int
	TotalDays    int
	TotalHours   decimal.Decimal
	TotalAmount  decimal.Decimal
	AverageHours decimal.Decimal
	Attendances  []attendanceModel.AttendanceModel
}

// YearlyMonthEntry: agregat satu bulan di laporan tahunan. Hanya bulan
// yang punya catatan yang masuk daftar.
type YearlyMonthEntry struct {
	Month       int
	TotalDays   int
	TotalHours  decimal.Decimal
	TotalAmount decimal.Decimal
}

type YearlyReport struct {
	Year        int
	TotalDays   int
	TotalHours  decimal.Decimal
	TotalAmount decimal.Decimal
	Months      []YearlyMonthEntry
}

// GetMonthlyReport mengambil seluruh kehadiran user pada satu bulan
// beserta istirahatnya, lalu menghitung total hari, jam, upah, dan
// rata-rata jam per hari hadir.
func (s *ReportService) GetMonthlyReport(ctx context.Context, userID uint, year, month int) (*MonthlyReport, error) {
	first, next := dbtime.MonthRange(year, month)

	var rows []attendanceModel.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Preload("BreakTimes").
		Where("attendance_user_id = ? AND attendance_date >= ? AND attendance_date < ?",
			userID, datatypes.Date(first), datatypes.Date(next)).
		Order("attendance_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rep := MonthlyReport{
		Year:         year,
		Month:        month,
		TotalDays:    len(rows),
		TotalHours:   decimal.Zero,
		TotalAmount:  decimal.Zero,
		AverageHours: decimal.Zero,
		Attendances:  rows,
	}
	for i := range rows {
		rep.TotalHours = rep.TotalHours.Add(rows[i].AttendanceTotalHours)
		rep.TotalAmount = rep.TotalAmount.Add(rows[i].AttendanceTotalAmount)
	}
	if rep.TotalDays > 0 {
		rep.AverageHours = rep.TotalHours.
			Div(decimal.NewFromInt(int64(rep.TotalDays))).
			Round(2)
	}
	return &rep, nil
}

// monthAggRow menampung hasil agregasi SQL per bulan.
type monthAggRow struct {
	Days   int64
	Hours  decimal.Decimal
	Amount decimal.Decimal
}

// GetYearlyReport merekap 12 bulan satu per satu dengan agregasi di DB.
// Bulan kosong dilewati dari daftar, tetapi grand total selalu diisi.
func (s *ReportService) GetYearlyReport(ctx context.Context, userID uint, year int) (*YearlyReport, error) {
	rep := YearlyReport{
		Year:        year,
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
		Months:      make([]YearlyMonthEntry, 0, 12),
	}

	for month := 1; month <= 12; month++ {
		first, next := dbtime.MonthRange(year, month)

		var agg monthAggRow
		err := s.DB.WithContext(ctx).
			Model(&attendanceModel.AttendanceModel{}).
			Select("COUNT(attendance_id) AS days, " +
				"COALESCE(SUM(attendance_total_hours), 0) AS hours, " +
				"COALESCE(SUM(attendance_total_amount), 0) AS amount").
			Where("attendance_user_id = ? AND attendance_date >= ? AND attendance_date < ?",
				userID, datatypes.Date(first), datatypes.Date(next)).
			Scan(&agg).Error
		if err != nil {
			return nil, err
		}

		rep.TotalDays += int(agg.Days)
		rep.TotalHours = rep.TotalHours.Add(agg.Hours)
		rep.TotalAmount = rep.TotalAmount.Add(agg.Amount)

		if agg.Days > 0 {
			rep.Months = append(rep.Months, YearlyMonthEntry{
				Month:       month,
				TotalDays:   int(agg.Days),
				TotalHours:  agg.Hours,
				TotalAmount: agg.Amount,
			})
		}
	}
	return &rep, nil
}
