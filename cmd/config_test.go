package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"supermart/cmd"
	"supermart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"HTTP_PORT", "STORE_NAME", "STORE_CAPITAL", "RESTOCK_CRON", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, "SuperMart", config.StoreName)
		assert.True(t, decimal.NewFromInt(100000).Equal(config.StoreCapital))
		assert.Empty(t, config.RestockCron)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "HTTP_PORT=9090\nSTORE_CAPITAL=2500.50\nRESTOCK_CRON=@every 1h\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
		// godotenv only fills unset variables; t.Setenv restores them afterwards.
		t.Setenv("HTTP_PORT", "")
		t.Setenv("STORE_CAPITAL", "")
		t.Setenv("RESTOCK_CRON", "")
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("STORE_CAPITAL")
		os.Unsetenv("RESTOCK_CRON")
		t.Setenv("STORE_NAME", "Corner Shop")

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "Corner Shop", config.StoreName)
		assert.True(t, decimal.RequireFromString("2500.50").Equal(config.StoreCapital))
		assert.Equal(t, "@every 1h", config.RestockCron)
	})

	t.Run("invalid capital", func(t *testing.T) {
		t.Setenv("STORE_CAPITAL", "lots")

		_, err := cmd.LoadConfig("")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("STORE_CAPITAL", "")
		t.Setenv("HTTP_PORT", "http")

		_, err := cmd.LoadConfig("")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestConfig_Validate(t *testing.T) {
	err := cmd.Config{HTTPPort: "70000"}.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "STORE_NAME")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
