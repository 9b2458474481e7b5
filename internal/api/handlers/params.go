package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Поддерживаемые форматы даты и времени в параметрах запроса
// Значения без смещения интерпретируются в переданной локации
var localTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime разбирает момент времени в формате RFC3339, YYYY-MM-DDTHH:MM[:SS] или YYYY-MM-DD
func ParseTime(value string, location *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if location == nil {
		location = time.UTC
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time %q", value)
}

// ParseOptionalTime как ParseTime, пустая строка дает nil
func ParseOptionalTime(value string, location *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseTime(value, location)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseUUID разбирает идентификатор, нулевой UUID считается ошибкой
func ParseUUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("nil uuid")
	}
	return id, nil
}
