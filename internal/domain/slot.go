package domain

import (
	"strconv"
	"time"
)

// Slot свободный интервал для бронирования
// Результат генерации носит рекомендательный характер и не резервирует время
type Slot struct {
	ID    string
	Start time.Time
	End   time.Time
}

// NewSlot создает слот с идентификатором, производным от момента начала
func NewSlot(start time.Time, duration time.Duration) Slot {
	return Slot{
		ID:    strconv.FormatInt(start.UnixMilli(), 10),
		Start: start,
		End:   start.Add(duration),
	}
}

// Interval возвращает интервал слота
func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
