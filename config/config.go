package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application's configuration values. It is loaded once at
// start-up and passed explicitly to the collaborators that need it.
type Config struct {
	AppName string `mapstructure:"appname"`
	AppEnv  string `mapstructure:"appenv"`
	AppPort uint16 `mapstructure:"appport"`
	GinMode string `mapstructure:"ginmode"`

	DBDriver             string        `mapstructure:"dbdriver"`
	DBHost               string        `mapstructure:"dbhost"`
	DBPort               uint16        `mapstructure:"dbport"`
	DBName               string        `mapstructure:"dbname"`
	DBUser               string        `mapstructure:"dbuser"`
	DBPass               string        `mapstructure:"dbpass"`
	DBSSLMode            string        `mapstructure:"dbsslmode"`
	DBMaxOpenConns       int           `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns       int           `mapstructure:"db_max_idle_conns"`
	DBConnMaxLifetime    time.Duration `mapstructure:"db_conn_max_lifetime"`
	DBLogLevel           string        `mapstructure:"db_log_level"`
	DBSlowQueryThreshold time.Duration `mapstructure:"db_slow_query_threshold"`

	RedisEnabled bool   `mapstructure:"redis_enabled"`
	RedisAddr    string `mapstructure:"redis_addr"`
	RedisPass    string `mapstructure:"redis_pass"`
	RedisDB      int    `mapstructure:"redis_db"`

	RateLimit       int           `mapstructure:"rate_limit"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`

	Timezone    string `mapstructure:"app_timezone"`
	PhoneRegion string `mapstructure:"phone_region"`

	LogFile        string `mapstructure:"log_file"`
	LogMaxSizeMB   int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups  int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays  int    `mapstructure:"log_max_age_days"`
	PersistReqLogs bool   `mapstructure:"persist_request_logs"`

	SeedOnStartup   bool          `mapstructure:"seed_on_startup"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

var defaults = map[string]interface{}{
	"appname": "Clinic Management API",
	"appenv":  "development",
	"appport": 8080,
	"ginmode": "debug",

	"dbdriver":                DriverMySQL,
	"dbhost":                  "localhost",
	"dbport":                  3306,
	"dbname":                  "clinic",
	"dbuser":                  "root",
	"dbpass":                  "",
	"dbsslmode":               "disable",
	"db_max_open_conns":       25,
	"db_max_idle_conns":       5,
	"db_conn_max_lifetime":    "30m",
	"db_log_level":            "warn",
	"db_slow_query_threshold": "200ms",

	"redis_enabled": false,
	"redis_addr":    "localhost:6379",
	"redis_pass":    "",
	"redis_db":      0,

	"rate_limit":        100,
	"rate_limit_window": "1m",

	"app_timezone": "UTC",
	"phone_region": "KE",

	"log_file":             "",
	"log_max_size_mb":      50,
	"log_max_backups":      5,
	"log_max_age_days":     28,
	"persist_request_logs": false,

	"seed_on_startup":  false,
	"shutdown_timeout": "15s",
}

// Load reads envFile (if it exists) into the process environment and builds
// a Config from defaults overridden by environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.PhoneRegion = strings.ToUpper(strings.TrimSpace(cfg.PhoneRegion))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.AppPort == 0 {
		return fmt.Errorf("APPPORT must be set")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DBDRIVER %q", c.DBDriver)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	if len(c.PhoneRegion) != 2 {
		return fmt.Errorf("PHONE_REGION must be a two-letter region code, got %q", c.PhoneRegion)
	}
	return nil
}

// IsTest reports whether the application runs under the test environment.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// Location returns the time zone used to interpret naive timestamps.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
