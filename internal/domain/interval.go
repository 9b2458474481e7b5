package domain

import "time"

// Interval полуинтервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps возвращает true, если интервалы пересекаются
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Expand расширяет интервал на buffer с обеих сторон
func (i Interval) Expand(buffer time.Duration) Interval {
	return Interval{
		Start: i.Start.Add(-buffer),
		End:   i.End.Add(buffer),
	}
}

// Collides проверка пересечения нового интервала i с занятым интервалом existing
// в форме трех случаев:
//   - i начинается внутри existing
//   - i заканчивается внутри existing
//   - i полностью содержит existing
//
// Для непустых интервалов совпадает с Overlaps
func (i Interval) Collides(existing Interval) bool {
	startsInside := !existing.Start.After(i.Start) && existing.End.After(i.Start)
	endsInside := existing.Start.Before(i.End) && !existing.End.Before(i.End)
	contains := !existing.Start.Before(i.Start) && !existing.End.After(i.End)
	return startsInside || endsInside || contains
}
