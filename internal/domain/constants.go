package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinMeetingDurationMinutes = 5
	MaxMeetingDurationMinutes = 480 // 8 hours
	MaxBufferMinutes          = 240
	MinSchedulesPerDay        = 1
	MaxSchedulesPerDay        = 100
	MinAdvanceBookingDays     = 1
	MaxAdvanceBookingDays     = 365
	MaxNoteLength             = 5000
	MaxNameLength             = 255

	// DefaultSlotsRangeDays диапазон поиска слотов, если клиент не указал конец периода
	DefaultSlotsRangeDays = 14

	// FinalRound раунд, после успешного прохождения которого кандидат принят
	FinalRound = 3
)

// StartOfDay возвращает начало календарного дня t в его локации
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay возвращает последний момент календарного дня t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayKey ключ календарного дня "YYYY-MM-DD"
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}
