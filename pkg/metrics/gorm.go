package metrics

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// Plugin observes every statement a gorm session runs, labeled by table and
// operation. Register it with db.Use.
type Plugin struct{}

func (Plugin) Name() string {
	return "metrics"
}

func (Plugin) Initialize(db *gorm.DB) error {
	callbacks := db.Callback()

	if err := callbacks.Create().Before("gorm:create").Register("metrics:before_create", start); err != nil {
		return err
	}
	if err := callbacks.Create().After("gorm:create").Register("metrics:after_create", finish("create")); err != nil {
		return err
	}

	if err := callbacks.Query().Before("gorm:query").Register("metrics:before_query", start); err != nil {
		return err
	}
	if err := callbacks.Query().After("gorm:query").Register("metrics:after_query", finish("query")); err != nil {
		return err
	}

	if err := callbacks.Update().Before("gorm:update").Register("metrics:before_update", start); err != nil {
		return err
	}
	if err := callbacks.Update().After("gorm:update").Register("metrics:after_update", finish("update")); err != nil {
		return err
	}

	if err := callbacks.Delete().Before("gorm:delete").Register("metrics:before_delete", start); err != nil {
		return err
	}
	if err := callbacks.Delete().After("gorm:delete").Register("metrics:after_delete", finish("delete")); err != nil {
		return err
	}

	if err := callbacks.Row().Before("gorm:row").Register("metrics:before_row", start); err != nil {
		return err
	}
	if err := callbacks.Row().After("gorm:row").Register("metrics:after_row", finish("row")); err != nil {
		return err
	}

	return nil
}

func start(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func finish(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}

		status := "ok"
		switch {
		case errors.Is(db.Error, gorm.ErrRecordNotFound):
			status = "not_found"
		case db.Error != nil:
			status = "error"
		}

		PromCounters[QueriesTotal].WithLabelValues(table, operation, status).Inc()

		begin, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}

		if beginAt, ok := begin.(time.Time); ok {
			PromHistograms[QueryDurationSeconds].
				WithLabelValues(table, operation).
				Observe(time.Since(beginAt).Seconds())
		}
	}
}
