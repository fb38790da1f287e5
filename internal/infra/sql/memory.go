package sql

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMemoryORM opens a private in-memory sqlite database. Every call gets
// its own database so tests do not share rows.
func NewMemoryORM() (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sqlite connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}

// NewSQLiteORM opens a file backed sqlite database in WAL mode. Writers wait
// on a locked database for up to the configured timeout.
func NewSQLiteORM(path string, timeout time.Duration) (*DB, error) {
	busy := timeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d", path, busy.Milliseconds())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", path, err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true, timeout: timeout}, nil
}
