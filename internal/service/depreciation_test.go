package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func TestStraightLineAnnualDepreciation(t *testing.T) {
	t.Run("with salvage value", func(t *testing.T) {
		got := StraightLineAnnualDepreciation(dec("1000"), dec("100"), intPtr(3))
		require.NotNil(t, got)
		assert.Equal(t, "300.00", got.StringFixed(2))
	})

	t.Run("without salvage value", func(t *testing.T) {
		got := StraightLineAnnualDepreciation(dec("1000"), nil, intPtr(4))
		require.NotNil(t, got)
		assert.Equal(t, "250.00", got.StringFixed(2))
	})

	t.Run("missing purchase price", func(t *testing.T) {
		assert.Nil(t, StraightLineAnnualDepreciation(nil, nil, intPtr(3)))
	})

	t.Run("missing useful life", func(t *testing.T) {
		assert.Nil(t, StraightLineAnnualDepreciation(dec("1000"), nil, nil))
	})

	t.Run("zero useful life", func(t *testing.T) {
		assert.Nil(t, StraightLineAnnualDepreciation(dec("1000"), nil, intPtr(0)))
	})
}

func TestReducingBalanceDepreciation(t *testing.T) {
	t.Run("two years at 20 percent", func(t *testing.T) {
		// 1000 -> 800 -> 640, accumulated 360
		got := ReducingBalanceDepreciation(dec("1000"), dec("20"), 2)
		require.NotNil(t, got)
		assert.Equal(t, "360.00", got.StringFixed(2))
	})

	t.Run("zero years elapsed", func(t *testing.T) {
		got := ReducingBalanceDepreciation(dec("1000"), dec("20"), 0)
		require.NotNil(t, got)
		assert.True(t, got.IsZero())
	})

	t.Run("missing inputs", func(t *testing.T) {
		assert.Nil(t, ReducingBalanceDepreciation(nil, dec("20"), 1))
		assert.Nil(t, ReducingBalanceDepreciation(dec("1000"), nil, 1))
	})
}

func TestCurrentBookValue(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("straight line after two years", func(t *testing.T) {
		purchased := now.AddDate(-2, 0, 0)
		got := CurrentBookValue(dec("1000"), dec("100"), nil, intPtr(3), &purchased, now)
		require.NotNil(t, got)
		// annual depreciation 300, slightly under 2 full years by the 365.25 divisor
		assert.InDelta(t, 400.0, got.InexactFloat64(), 2.0)
	})

	t.Run("reducing balance preferred when rate set", func(t *testing.T) {
		purchased := now.AddDate(-2, 0, 0)
		got := CurrentBookValue(dec("1000"), nil, dec("20"), intPtr(3), &purchased, now)
		require.NotNil(t, got)
		assert.Equal(t, "640.00", got.StringFixed(2))
	})

	t.Run("never drops below salvage", func(t *testing.T) {
		purchased := now.AddDate(-10, 0, 0)
		got := CurrentBookValue(dec("1000"), dec("150"), nil, intPtr(3), &purchased, now)
		require.NotNil(t, got)
		assert.Equal(t, "150.00", got.StringFixed(2))
	})

	t.Run("no depreciation inputs keeps purchase price", func(t *testing.T) {
		purchased := now.AddDate(-2, 0, 0)
		got := CurrentBookValue(dec("1000"), nil, nil, nil, &purchased, now)
		require.NotNil(t, got)
		assert.Equal(t, "1000.00", got.StringFixed(2))
	})

	t.Run("missing purchase price or date", func(t *testing.T) {
		assert.Nil(t, CurrentBookValue(nil, nil, nil, intPtr(3), nil, now))
		got := CurrentBookValue(dec("1000"), nil, nil, intPtr(3), nil, now)
		require.NotNil(t, got)
		assert.Equal(t, "1000.00", got.StringFixed(2))
	})
}
