package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// ParseLogLevel maps silent/error/warn/info to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "warn", "":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) gormLevel() logger.LogLevel {
	switch l {
	case LogLevelSilent:
		return logger.Silent
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	default:
		return logger.Info
	}
}

type DatabaseManager struct {
	DB       *gorm.DB
	LogLevel LogLevel
}

// New opens the pool (e.g. 10 conns) for dsn.
func New(dsn string, maxConnection int, level LogLevel) (*DatabaseManager, error) {
	db, err := gorm.Open(Dialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level.gormLevel()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	if IsSQLite(dsn) {
		// sqlite allows a single writer
		maxConnection = 1
	}
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{DB: db, LogLevel: level}, nil
}

// Wrap builds a manager around an already opened connection.
func Wrap(db *gorm.DB) *DatabaseManager {
	return &DatabaseManager{DB: db}
}

// GetDB returns a session bound to ctx.
func (dm *DatabaseManager) GetDB(ctx context.Context) *gorm.DB {
	return dm.DB.WithContext(ctx)
}

func (dm *DatabaseManager) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(dm.GetDB(ctx))
}

// Close closes the pool
func (dm *DatabaseManager) Close() error {
	sqlDB, err := dm.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
