package config

import (
	"fmt"
	"io"
	"log"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDSN is the in-memory sqlite database used when APPENV=test.
const testDSN = "file::memory:?cache=shared&_fk=1"

// DSN builds the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.IsTest() {
		return testDSN
	}
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode, c.Timezone)
	case DriverSQLite:
		name := c.DBName
		if !strings.HasSuffix(name, ".db") {
			name += ".db"
		}
		return fmt.Sprintf("file:%s?_fk=1", name)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	}
}

func (c *Config) dialector() gorm.Dialector {
	if c.IsTest() {
		return sqlite.Open(c.DSN())
	}
	switch c.DBDriver {
	case DriverPostgres:
		return postgres.Open(c.DSN())
	case DriverSQLite:
		return sqlite.Open(c.DSN())
	default:
		return mysql.Open(c.DSN())
	}
}

// ParseLogLevel maps DB_LOG_LEVEL onto gorm's log levels.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the database described by cfg and applies the pool
// settings. SQL statements are logged to out with the [DB] prefix.
func ConnectDatabase(cfg *Config, out io.Writer) (*gorm.DB, error) {
	gormLogger := logger.New(log.New(out, "[DB] ", log.LstdFlags|log.Lmsgprefix), logger.Config{
		SlowThreshold:             cfg.DBSlowQueryThreshold,
		LogLevel:                  ParseLogLevel(cfg.DBLogLevel),
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(cfg.dialector(), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	}

	return db, nil
}
