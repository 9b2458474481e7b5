package get_available_slots

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// resolveRange вычисляет период генерации
// Начало округляется до начала дня, конец до конца дня и ограничивается горизонтом бронирования
func resolveRange(req *Request, settings *domain.SchedulingSettings, now time.Time) (time.Time, time.Time) {
	loc := now.Location()

	start := now
	if req.StartDate != nil {
		start = req.StartDate.In(loc)
	}

	end := now.AddDate(0, 0, domain.DefaultSlotsRangeDays)
	if req.EndDate != nil {
		end = req.EndDate.In(loc)
	}

	start = domain.StartOfDay(start)
	end = domain.EndOfDay(end)

	if horizon := settings.BookingHorizon(now); end.After(horizon) {
		end = horizon
	}

	return start, end
}

// generationInput входные данные генерации, уже прочитанные из хранилищ
type generationInput struct {
	weekly     []*domain.WeeklyAvailability
	exceptions []*domain.ExceptionDate
	bookings   []*domain.Booking // только активные
	settings   *domain.SchedulingSettings
	rangeStart time.Time
	rangeEnd   time.Time
	now        time.Time
}

// generateSlots строит список свободных слотов по дням периода
//
// День пропускается целиком, если он заблокирован исключением или число активных
// бронирований достигло MaxSchedulesPerDay (даже если в расписании остались окна).
// Каждая запись расписания на день обходится отдельно с шагом duration+buffer.
// Прошедшие кандидаты и пересекающиеся с бронированием (с учетом буфера) отбрасываются,
// курсор при этом все равно сдвигается на шаг.
func generateSlots(in generationInput) []domain.Slot {
	slots := make([]domain.Slot, 0)

	duration := in.settings.MeetingDuration()
	buffer := in.settings.Buffer()
	step := in.settings.Step()
	if duration <= 0 || step <= 0 {
		return slots
	}

	blocked := make(map[string]bool, len(in.exceptions))
	for _, e := range in.exceptions {
		if e.IsBlocked {
			blocked[domain.DayKey(e.Date)] = true
		}
	}

	perDay := make(map[string]int)
	busy := make([]domain.Interval, 0, len(in.bookings))
	for _, b := range in.bookings {
		if !b.IsActive() {
			continue
		}
		perDay[domain.DayKey(b.StartTime.In(in.now.Location()))]++
		busy = append(busy, b.Interval().Expand(buffer))
	}

	byWeekday := make(map[time.Weekday][]*domain.WeeklyAvailability)
	for _, a := range in.weekly {
		byWeekday[a.Weekday()] = append(byWeekday[a.Weekday()], a)
	}

	seen := make(map[string]struct{})

	for day := domain.StartOfDay(in.rangeStart); !day.After(in.rangeEnd); day = day.AddDate(0, 0, 1) {
		key := domain.DayKey(day)

		// 1. Заблокированный день
		if blocked[key] {
			continue
		}

		// 2. Дневной лимит достигнут
		if perDay[key] >= in.settings.MaxSchedulesPerDay {
			continue
		}

		// 3. Обход каждой записи расписания на этот день недели
		for _, a := range byWeekday[day.Weekday()] {
			window := a.Window(day)

			for cursor := window.Start; !cursor.Add(duration).After(window.End); cursor = cursor.Add(step) {
				if cursor.Before(in.now) {
					continue
				}

				slot := domain.NewSlot(cursor, duration)
				if conflicts(slot.Interval(), busy) {
					continue
				}

				// Пересекающиеся записи расписания дают одинаковые слоты
				if _, ok := seen[slot.ID]; ok {
					continue
				}
				seen[slot.ID] = struct{}{}

				slots = append(slots, slot)
			}
		}
	}

	slices.SortFunc(slots, func(a, b domain.Slot) int {
		return a.Start.Compare(b.Start)
	})

	return slots
}

func conflicts(slot domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
