package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Business  BusinessConfig  `mapstructure:"business"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"SERVER_PORT"`
	Host         string        `mapstructure:"SERVER_HOST"`
	Env          string        `mapstructure:"ENV"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL          string `mapstructure:"DATABASE_URL"`
	MaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	SnapshotSpec string `mapstructure:"SCHEDULER_SNAPSHOT_SPEC"`
	ReminderSpec string `mapstructure:"SCHEDULER_REMINDER_SPEC"`
	Timezone     string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

// BusinessConfig carries the lending-book policy constants: the
// special-project override list, the operating-company name matcher
// for the investor-payout exclusion, and the forecast horizons.
type BusinessConfig struct {
	SpecialProjectIDs     string `mapstructure:"SPECIAL_PROJECT_IDS"`
	CompanyNameMatch      string `mapstructure:"COMPANY_NAME_MATCH"`
	ForecastHorizonMonths int    `mapstructure:"FORECAST_HORIZON_MONTHS"`
	ReminderHorizonDays   int    `mapstructure:"REMINDER_HORIZON_DAYS"`
	PaidToleranceRate     string `mapstructure:"PAID_TOLERANCE_RATE"`
}

type CacheConfig struct {
	ForecastTTL string `mapstructure:"CACHE_FORECAST_TTL"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("COMPANY_NAME_MATCH", "goodland")
	viper.SetDefault("SPECIAL_PROJECT_IDS", "")
	viper.SetDefault("FORECAST_HORIZON_MONTHS", 12)
	viper.SetDefault("REMINDER_HORIZON_DAYS", 30)
	viper.SetDefault("PAID_TOLERANCE_RATE", "0.01")
	viper.SetDefault("CACHE_FORECAST_TTL", "15m")
	viper.SetDefault("SCHEDULER_SNAPSHOT_SPEC", "0 0 6 * * *")
	viper.SetDefault("SCHEDULER_REMINDER_SPEC", "0 0 9 * * *")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Australia/Sydney")

	viper.AutomaticEnv()

	// Optional .env file; absence is fine.
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.ForecastHorizonMonths <= 0 {
		return fmt.Errorf("FORECAST_HORIZON_MONTHS must be greater than 0")
	}

	if c.Business.ReminderHorizonDays <= 0 {
		return fmt.Errorf("REMINDER_HORIZON_DAYS must be greater than 0")
	}

	if _, err := decimal.NewFromString(c.Business.PaidToleranceRate); err != nil {
		return fmt.Errorf("PAID_TOLERANCE_RATE must be a valid decimal: %w", err)
	}

	if _, err := c.SpecialProjectIDs(); err != nil {
		return fmt.Errorf("SPECIAL_PROJECT_IDS must be a comma-separated list of ids: %w", err)
	}

	if _, err := time.ParseDuration(c.Cache.ForecastTTL); err != nil {
		return fmt.Errorf("CACHE_FORECAST_TTL must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// SpecialProjectIDs parses the configured comma-separated project ids.
func (c *Config) SpecialProjectIDs() ([]int64, error) {
	raw := strings.TrimSpace(c.Business.SpecialProjectIDs)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PaidTolerance returns the paid-in-full tolerance as a decimal.
func (c *Config) PaidTolerance() decimal.Decimal {
	tolerance, _ := decimal.NewFromString(c.Business.PaidToleranceRate)
	return tolerance
}

// ForecastTTL returns the forecast cache lifetime as a duration.
func (c *Config) ForecastTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.ForecastTTL)
	return ttl
}
