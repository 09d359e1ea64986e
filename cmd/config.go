package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"supermart/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultHTTPPort     = "8080"
	defaultStoreName    = "SuperMart"
	defaultStoreCapital = "100000"
	defaultLogLevel     = "info"
)

type Config struct {
	HTTPPort     string
	StoreName    string
	StoreCapital decimal.Decimal
	// RestockCron is the restock job schedule; empty disables the job.
	RestockCron string
	LogLevel    string
}

// LoadConfig reads the configuration from the environment. Variables in
// envFile are loaded first unless already set; a missing envFile is not an
// error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	capital, err := decimal.NewFromString(getEnv("STORE_CAPITAL", defaultStoreCapital))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("STORE_CAPITAL", err)
	}

	config := Config{
		HTTPPort:     getEnv("HTTP_PORT", defaultHTTPPort),
		StoreName:    getEnv("STORE_NAME", defaultStoreName),
		StoreCapital: capital,
		RestockCron:  os.Getenv("RESTOCK_CRON"),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var err error
	if port, convErr := strconv.Atoi(c.HTTPPort); convErr != nil || port < 1 || port > 65535 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("HTTP_PORT", c.HTTPPort, 1, 65535))
	}
	if c.StoreName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("STORE_NAME"))
	}
	if c.LogLevel == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("LOG_LEVEL"))
	}
	return err
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
