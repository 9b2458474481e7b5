package dbmetrics

import (
	"database/sql"
	"fmt"

	"github.com/robfig/cron/v3"
)

// PoolObserver принимает статистику пула соединений
type PoolObserver interface {
	SetPoolStats(stats sql.DBStats)
}

// DefaultPoolSchedule расписание сбора статистики пула по умолчанию
const DefaultPoolSchedule = "@every 15s"

// StartPoolCollector запускает периодический сбор статистики пула по cron расписанию
// Возвращает функцию остановки
func StartPoolCollector(db *sql.DB, observer PoolObserver, schedule string) (func(), error) {
	if schedule == "" {
		schedule = DefaultPoolSchedule
	}

	c := cron.New()
	collect := func() { observer.SetPoolStats(db.Stats()) }

	if _, err := c.AddFunc(schedule, collect); err != nil {
		return nil, fmt.Errorf("dbmetrics: invalid pool schedule %q: %w", schedule, err)
	}

	// Первый снимок сразу, чтобы gauge не были пустыми до первого тика
	collect()
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}
