package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the payroll policy knobs. Rates are fractions
// (0.10 = 10%). StandardWorkingDays is the fixed normalization constant
// used to derive a daily rate; it is not the calendar working-day count
// of any particular month.
type PayrollConfig struct {
	TaxRate             decimal.Decimal
	PFRate              decimal.Decimal
	StandardWorkingDays int
	BatchWorkers        int
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll policy configuration
	taxRate, err := decimal.NewFromString(getEnv("PAYROLL_TAX_RATE", "0.10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_TAX_RATE: %w", err)
	}
	pfRate, err := decimal.NewFromString(getEnv("PAYROLL_PF_RATE", "0.12"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PF_RATE: %w", err)
	}
	standardDays, err := strconv.Atoi(getEnv("PAYROLL_STANDARD_WORKING_DAYS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_STANDARD_WORKING_DAYS: %w", err)
	}
	batchWorkers, err := strconv.Atoi(getEnv("PAYROLL_BATCH_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_BATCH_WORKERS: %w", err)
	}

	config.Payroll = PayrollConfig{
		TaxRate:             taxRate,
		PFRate:              pfRate,
		StandardWorkingDays: standardDays,
		BatchWorkers:        batchWorkers,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.TaxRate.IsNegative() || c.Payroll.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_TAX_RATE must be a fraction in [0, 1]")
	}
	if c.Payroll.PFRate.IsNegative() || c.Payroll.PFRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_PF_RATE must be a fraction in [0, 1]")
	}
	if c.Payroll.StandardWorkingDays <= 0 {
		return fmt.Errorf("PAYROLL_STANDARD_WORKING_DAYS must be positive")
	}
	if c.Payroll.BatchWorkers <= 0 {
		return fmt.Errorf("PAYROLL_BATCH_WORKERS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
