// Package database opens the gorm connection the repositories run on.
package database

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bilemo/api/config"
)

var DB *gorm.DB

// Connect opens the configured database and tunes the pool. It returns an
// error instead of exiting so the caller can shut down cleanly.
func Connect() error {
	dialector, err := dialectorFor(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	// Query logging is handled by the request-logger middleware.
	// TranslateError turns driver unique-index violations into
	// gorm.ErrDuplicatedKey so handlers can map them to a 400.
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(intSetting("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(intSetting("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

func intSetting(key string, fallback int) int {
	n, err := strconv.Atoi(config.Get(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}
