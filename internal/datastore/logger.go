// Package datastore provides logging infrastructure for database operations
package datastore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/securebank/fraudflow/internal/logging"
)

// DefaultSlowQueryThreshold defines the duration after which a query is
// considered slow and logged at warn level.
const DefaultSlowQueryThreshold = time.Second

var (
	datastoreLogger *slog.Logger
	loggerOnce      sync.Once
)

// getLogger returns the package logger, initializing it on first use.
func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		datastoreLogger = logging.ForService("datastore")
	})
	return datastoreLogger
}

// gormSlogAdapter routes GORM's internal logging through slog so database
// logs share the service's structured format.
type gormSlogAdapter struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// newGormLogger creates the GORM logger used by every store dialect.
func newGormLogger() gormlogger.Interface {
	return &gormSlogAdapter{
		logger:        getLogger(),
		level:         gormlogger.Warn,
		slowThreshold: DefaultSlowQueryThreshold,
	}
}

func (g *gormSlogAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormSlogAdapter) Info(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Info {
		g.logger.InfoContext(ctx, msg, "args", args)
	}
}

func (g *gormSlogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Warn {
		g.logger.WarnContext(ctx, msg, "args", args)
	}
}

func (g *gormSlogAdapter) Error(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Error {
		g.logger.ErrorContext(ctx, msg, "args", args)
	}
}

func (g *gormSlogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.logger.ErrorContext(ctx, "Query failed",
			"error", err,
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed)
	case elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.logger.WarnContext(ctx, "Slow query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed,
			"threshold", g.slowThreshold)
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.logger.InfoContext(ctx, "Query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed)
	}
}
