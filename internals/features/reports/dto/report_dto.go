// file: internals/features/reports/dto/report_dto.go
package dto

import (
	attendanceDTO "absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/reports/service"

	"github.com/shopspring/decimal"
)

type MonthlyReportResponse struct {
	Year         int                                          `json:"year"`
	Month        int                                          `json:"month"`
	TotalDays    int                                          `json:"total_days"`
	TotalHours   decimal.Decimal                              `json:"total_hours"`
	TotalAmount  decimal.Decimal                              `json:"total_amount"`
	AverageHours decimal.Decimal                              `json:"average_hours"`
	Attendances  []attendanceDTO.AttendanceWithBreaksResponse `json:"attendances"`
}

type YearlyMonthEntryResponse struct {
	Month       int             `json:"month"`
	TotalDays   int             `json:"total_days"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type YearlyReportResponse struct {
	Year        int                        `json:"year"`
	TotalDays   int                        `json:"total_days"`
	TotalHours  decimal.Decimal            `json:"total_hours"`
	TotalAmount decimal.Decimal            `json:"total_amount"`
	Months      []YearlyMonthEntryResponse `json:"months"`
}

func FromMonthlyReport(r service.MonthlyReport) MonthlyReportResponse {
	items := make([]attendanceDTO.AttendanceWithBreaksResponse, 0, len(r.Attendances))
	for _, m := range r.Attendances {
		items = append(items, attendanceDTO.FromAttendanceModelWithBreaks(m))
	}
	return MonthlyReportResponse{
		Year:         r.Year,
		Month:        r.Month,
		TotalDays:    r.TotalDays,
		TotalHours:   r.TotalHours,
		TotalAmount:  r.TotalAmount,
		AverageHours: r.AverageHours,
		Attendances:  items,
	}
}

func FromYearlyReport(r service.YearlyReport) YearlyReportResponse {
	months := make([]YearlyMonthEntryResponse, 0, len(r.Months))
	for _, m := range r.Months {
		months = append(months, YearlyMonthEntryResponse{
			Month:       m.Month,
			TotalDays:   m.TotalDays,
			TotalHours:  m.TotalHours,
			TotalAmount: m.TotalAmount,
		})
	}
	return YearlyReportResponse{
		Year:        r.Year,
		TotalDays:   r.TotalDays,
		TotalHours:  r.TotalHours,
		TotalAmount: r.TotalAmount,
		Months:      months,
	}
}
