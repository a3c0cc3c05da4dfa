package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

type Config struct {
	Env                string  `mapstructure:"ENV"`
	ServerPort         int     `mapstructure:"SERVER_PORT"`
	SigningKey         string  `mapstructure:"SIGNING_KEY"`
	DBUsername         string  `mapstructure:"DB_USERNAME"`
	DBPassword         string  `mapstructure:"DB_PASSWORD"`
	DBHost             string  `mapstructure:"DB_HOST"`
	DBPort             string  `mapstructure:"DB_PORT"`
	DBDriver           string  `mapstructure:"DB_DRIVER"`
	DBName             string  `mapstructure:"DB_NAME"`
	SSLMode            string  `mapstructure:"SSLMODE"`
	RedisHost          string  `mapstructure:"REDIS_HOST"`
	RedisPort          string  `mapstructure:"REDIS_PORT"`
	RedisPassword      string  `mapstructure:"REDIS_PASSWORD"`
	PaymentGatewayURL  string  `mapstructure:"PAYMENT_GATEWAY_URL"`
	PaymentGatewayKey  string  `mapstructure:"PAYMENT_GATEWAY_KEY"`
	PlatformAccountID  int64   `mapstructure:"PLATFORM_ACCOUNT_ID"`
	CommissionRate     float64 `mapstructure:"COMMISSION_RATE"`
	BillingGranularity int     `mapstructure:"BILLING_GRANULARITY_MINUTES"`
	CancelGraceMinutes int     `mapstructure:"CANCEL_GRACE_MINUTES"`
	LateCancelFeeRate  float64 `mapstructure:"LATE_CANCEL_FEE_RATE"`
}

func LoadConfig(path string) (*Config, error) {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Disable environment variable prefix
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Platform policy defaults; overridable per deployment
	v.SetDefault("COMMISSION_RATE", 0.10)
	v.SetDefault("BILLING_GRANULARITY_MINUTES", 15)
	v.SetDefault("CANCEL_GRACE_MINUTES", 10)
	v.SetDefault("LATE_CANCEL_FEE_RATE", 0.0)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// Create config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.DBUsername == "" || config.DBPassword == "" {
		return fmt.Errorf("database credentials must be provided")
	}

	if config.CommissionRate < 0 || config.CommissionRate >= 1 {
		return fmt.Errorf("commission rate must be within [0, 1)")
	}

	if config.BillingGranularity <= 0 {
		return fmt.Errorf("billing granularity must be a positive number of minutes")
	}

	if config.LateCancelFeeRate < 0 || config.LateCancelFeeRate > 1 {
		return fmt.Errorf("late cancellation fee rate must be within [0, 1]")
	}

	return nil
}

// Optional: Masking sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.SigningKey = "****"
	redacted.DBPassword = "****"
	redacted.RedisPassword = "****"
	redacted.PaymentGatewayKey = "****"
	return redacted
}
