package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Key Tests
// =============================================================================

func TestKey(t *testing.T) {
	ts := time.Date(2024, 6, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-06-05", Key(ts))
}

func TestKeyRoundTrip(t *testing.T) {
	key := "2024-06-05"
	ts, err := Parse(key)
	assert.NoError(t, err)
	assert.Equal(t, key, Key(ts))
	assert.Equal(t, 0, ts.Hour())
}

func TestIsKey(t *testing.T) {
	assert.True(t, IsKey("2024-06-05"))
	assert.True(t, IsKey("1999-12-31"))
	assert.False(t, IsKey("2024-6-5"))
	assert.False(t, IsKey("2024-13-01"))
	assert.False(t, IsKey("2024-02-30"))
	assert.False(t, IsKey("tomorrow"))
	assert.False(t, IsKey(""))
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2024, 6, 5, 23, 59, 59, 0, time.Local)
	mid := Midnight(ts)
	assert.Equal(t, 0, mid.Hour())
	assert.Equal(t, 0, mid.Minute())
	assert.Equal(t, Key(ts), Key(mid))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "June 5, 2024", Display("2024-06-05"))
	assert.Equal(t, "not-a-date", Display("not-a-date"))
}

// =============================================================================
// Weekend Tests
// =============================================================================

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	sunday := time.Date(2024, 6, 2, 12, 0, 0, 0, time.Local)
	monday := time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

// =============================================================================
// DaysUntil Tests
// =============================================================================

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 0, 0, 0, time.Local)

	t.Run("today", func(t *testing.T) {
		days, err := DaysUntil("2024-06-05", now)
		assert.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("future", func(t *testing.T) {
		days, err := DaysUntil("2024-06-10", now)
		assert.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("past", func(t *testing.T) {
		days, err := DaysUntil("2024-06-01", now)
		assert.NoError(t, err)
		assert.Equal(t, -4, days)
	})

	t.Run("across_year_boundary", func(t *testing.T) {
		days, err := DaysUntil("2025-01-01", now)
		assert.NoError(t, err)
		assert.Equal(t, 210, days)
	})

	t.Run("independent_of_time_of_day", func(t *testing.T) {
		early := time.Date(2024, 6, 5, 0, 1, 0, 0, time.Local)
		late := time.Date(2024, 6, 5, 23, 59, 0, 0, time.Local)

		d1, err := DaysUntil("2024-06-08", early)
		assert.NoError(t, err)
		d2, err := DaysUntil("2024-06-08", late)
		assert.NoError(t, err)
		assert.Equal(t, d1, d2)
	})

	t.Run("malformed_key", func(t *testing.T) {
		_, err := DaysUntil("soon", now)
		assert.Error(t, err)
	})
}

// =============================================================================
// ParseInput Tests
// =============================================================================

func TestParseInput(t *testing.T) {
	now := time.Date(2024, 6, 5, 15, 0, 0, 0, time.Local)

	t.Run("empty_means_today", func(t *testing.T) {
		key, err := ParseInput("", now)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-05", key)
	})

	t.Run("today_literal", func(t *testing.T) {
		key, err := ParseInput("Today", now)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-05", key)
	})

	t.Run("canonical_key_passthrough", func(t *testing.T) {
		key, err := ParseInput("2023-01-15", now)
		assert.NoError(t, err)
		assert.Equal(t, "2023-01-15", key)
	})

	t.Run("natural_language", func(t *testing.T) {
		key, err := ParseInput("yesterday", now)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-04", key)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseInput("xyzzy plugh", now)
		assert.Error(t, err)
	})
}
