package constants

// Status hari pada kalender bulanan.
// Weekend menang atas present/absent; hari libur nasional belum diintegrasikan.
const (
	CalendarStatusWeekend = "weekend"
	CalendarStatusPresent = "present"
	CalendarStatusAbsent  = "absent"
)

// Day-of-week kalender: Senin=0 .. Minggu=6.
const (
	WeekdaySaturday = 5
	WeekdaySunday   = 6
)
