package kernel_test

import (
	"math"
	"testing"

	"supermart/internal/core/domain/model/kernel"
	"supermart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.True(t, id1.IsEqual(id1))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTemperature(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, celsius := range []float64{-20, -4.5, 0, 10} {
			temp, err := kernel.NewTemperature(celsius)

			require.NoError(t, err)
			assert.InDelta(t, celsius, temp.Celsius(), 1e-9)
		}
	})

	t.Run("out of range is invalid value", func(t *testing.T) {
		for _, celsius := range []float64{-20.01, 10.5, 40} {
			_, err := kernel.NewTemperature(celsius)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Equal(t, errs.KindInvalidValue, errs.KindOf(err))
		}
	})

	t.Run("NaN is invalid value", func(t *testing.T) {
		_, err := kernel.NewTemperature(math.NaN())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTemperature_Clamp(t *testing.T) {
	assert.Equal(t, kernel.MinTemperature, kernel.Temperature(-40).Clamp())
	assert.Equal(t, kernel.MaxTemperature, kernel.Temperature(25).Clamp())
	assert.Equal(t, kernel.Temperature(3), kernel.Temperature(3).Clamp())
	assert.Equal(t, "4.0°C", kernel.Temperature(4).String())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"100000", "$100,000.00"},
		{"100", "$100.00"},
		{"0.17", "$0.17"},
		{"0.4502", "$0.45"},
		{"0.505", "$0.51"},
		{"-10", "-$10.00"},
		{"0", "$0.00"},
		{"-0.001", "$0.00"},
		{"1234567.891", "$1,234,567.89"},
		{"999", "$999.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}
