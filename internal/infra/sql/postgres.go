package sql

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresORM opens a postgres database. The password may be kept out of
// the DSN and supplied through SMOKEGUARD_SERVER_POSTGRES_PASSWORD.
func NewPostgresORM(dsn string, timeout time.Duration) (*DB, error) {
	pass, ok := os.LookupEnv("SMOKEGUARD_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              timeout,
	}, nil
}
