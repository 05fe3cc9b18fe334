package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daycheck/daycheck/internal/errors"
)

// =============================================================================
// Create / Update Tests
// =============================================================================

func TestCreateCounter(t *testing.T) {
	s := newTestState(t)

	counter, err := s.CreateCounter("Visa renewal", "2024-09-15")
	require.NoError(t, err)
	assert.Equal(t, "Visa renewal", counter.Title)
	assert.Equal(t, "2024-09-15", counter.TargetDate)
}

func TestCreateCounterAllowsPastTarget(t *testing.T) {
	s := newTestState(t)
	counter, err := s.CreateCounter("Started running", "2024-05-01")
	require.NoError(t, err)
	assert.Negative(t, s.DaysUntil(counter))
}

func TestCreateCounterValidation(t *testing.T) {
	s := newTestState(t)

	_, err := s.CreateCounter("", "2024-09-15")
	assert.True(t, errors.IsValidation(err))

	_, err = s.CreateCounter("Visa", "soon")
	assert.True(t, errors.IsValidation(err))
}

func TestUpdateCounter(t *testing.T) {
	s := newTestState(t)
	counter, err := s.CreateCounter("Visa renewal", "2024-09-15")
	require.NoError(t, err)

	updated, err := s.UpdateCounter(counter.ID, "Visa appointment", "2024-10-01")
	require.NoError(t, err)
	assert.Equal(t, "Visa appointment", updated.Title)
	assert.Equal(t, "2024-10-01", updated.TargetDate)
	assert.False(t, updated.EditedAt.IsZero())
}

// =============================================================================
// DaysUntil / Ordering Tests
// =============================================================================

func TestCounterDaysUntil(t *testing.T) {
	s := newTestState(t)

	today, err := s.CreateCounter("Today", "2024-06-05")
	require.NoError(t, err)
	future, err := s.CreateCounter("Future", "2024-06-10")
	require.NoError(t, err)
	past, err := s.CreateCounter("Past", "2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, 0, s.DaysUntil(today))
	assert.Equal(t, 5, s.DaysUntil(future))
	assert.Equal(t, -4, s.DaysUntil(past))
}

func TestSortedCountersNearestFirst(t *testing.T) {
	s := newTestState(t)

	far, err := s.CreateCounter("Far", "2024-12-25")
	require.NoError(t, err)
	near, err := s.CreateCounter("Near", "2024-06-07")
	require.NoError(t, err)
	recent, err := s.CreateCounter("Recent past", "2024-06-02")
	require.NoError(t, err)

	sorted := s.SortedCounters()
	require.Len(t, sorted, 3)
	assert.Equal(t, near.ID, sorted[0].ID)   // 2 days out
	assert.Equal(t, recent.ID, sorted[1].ID) // 3 days ago
	assert.Equal(t, far.ID, sorted[2].ID)
}

func TestCountersTargeting(t *testing.T) {
	s := newTestState(t)
	_, err := s.CreateCounter("Visa", "2024-09-15")
	require.NoError(t, err)

	assert.Len(t, s.CountersTargeting("2024-09-15"), 1)
	assert.Empty(t, s.CountersTargeting("2024-09-16"))
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteCounter(t *testing.T) {
	s := newTestState(t)
	counter, err := s.CreateCounter("Visa", "2024-09-15")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCounter(counter.ID))
	assert.Empty(t, s.Counters)
	assert.ErrorIs(t, s.DeleteCounter(counter.ID), errors.ErrNotFound)
}

func TestClearCounters(t *testing.T) {
	s := newTestState(t)
	_, err := s.CreateCounter("A", "2024-09-15")
	require.NoError(t, err)
	_, err = s.CreateCounter("B", "2024-10-01")
	require.NoError(t, err)

	require.NoError(t, s.ClearCounters())
	assert.Empty(t, s.Counters)
}
