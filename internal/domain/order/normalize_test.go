package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("canonical input passes through", func(t *testing.T) {
		got, ok := NormalizeDate("2026-03-15")
		require.NotNil(t, got)
		assert.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("slash dates read month first", func(t *testing.T) {
		got, ok := NormalizeDate("3/4/2026")
		require.NotNil(t, got)
		assert.True(t, ok)
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 4, got.Day())

		got, _ = NormalizeDate("12/31/25")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("ASAP means today in any case", func(t *testing.T) {
		for _, raw := range []string{"ASAP", "asap", "Asap"} {
			got, ok := NormalizeDate(raw)
			require.NotNil(t, got, raw)
			assert.True(t, ok)
			now := time.Now()
			assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), *got)
		}
	})

	t.Run("textual layouts are accepted", func(t *testing.T) {
		got, _ := NormalizeDate("Jan 2, 2026")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), *got)

		got, _ = NormalizeDate("2026-03-15T10:30:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("absent input is nil and not a failure", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			got, ok := NormalizeDate(raw)
			assert.Nil(t, got)
			assert.True(t, ok, raw)
		}
	})

	t.Run("garbage is nil and flagged", func(t *testing.T) {
		for _, raw := range []string{"not a date", "99/99/9999"} {
			got, ok := NormalizeDate(raw)
			assert.Nil(t, got)
			assert.False(t, ok, raw)
		}
	})
}

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, "1250", NormalizeQuantity("1,250").String())
	assert.Equal(t, "3.5", NormalizeQuantity(" 3.5 ").String())
	assert.True(t, NormalizeQuantity("").IsZero())
	assert.True(t, NormalizeQuantity("twelve").IsZero())
}

func TestNormalizeUnitPrice(t *testing.T) {
	assert.Equal(t, "9.99", NormalizeUnitPrice("$9.99").String())
	assert.Equal(t, "1250.5", NormalizeUnitPrice("€1,250.50").String())
	assert.Equal(t, "42", NormalizeUnitPrice("42").String())
	assert.True(t, NormalizeUnitPrice("").IsZero())
	assert.True(t, NormalizeUnitPrice("$").IsZero())
	assert.True(t, NormalizeUnitPrice("n/a").IsZero())
}

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "CASE", NormalizeUnit("CASE", "750ml"))
	assert.Equal(t, "750ml", NormalizeUnit("", "750ml"))
	assert.Equal(t, "750ml", NormalizeUnit("  ", "750ml"))
	assert.Equal(t, "EACH", NormalizeUnit("", ""))
}

func TestNormalizeWeight(t *testing.T) {
	got := NormalizeWeight("12.5")
	require.NotNil(t, got)
	assert.Equal(t, "12.5", got.String())

	// Absent weight stays absent, not zero
	assert.Nil(t, NormalizeWeight(""))
	assert.Nil(t, NormalizeWeight("heavy"))
}

func TestNormalizeConversionRate(t *testing.T) {
	assert.Equal(t, "1.25", NormalizeConversionRate("1.25").String())
	assert.Equal(t, "1", NormalizeConversionRate("").String())
	assert.Equal(t, "1", NormalizeConversionRate("unknown").String())
}
