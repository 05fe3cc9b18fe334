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

func TestCreateSchedule(t *testing.T) {
	s := newTestState(t)

	sched, err := s.CreateSchedule("Conference", "2024-06-03", "2024-06-07", true)
	require.NoError(t, err)
	assert.Equal(t, "Conference", sched.Title)
	assert.Len(t, sched.ValidDates, 5)
}

func TestCreateScheduleValidation(t *testing.T) {
	s := newTestState(t)

	t.Run("blank_title", func(t *testing.T) {
		_, err := s.CreateSchedule("  ", "2024-06-03", "2024-06-07", false)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("inverted_range", func(t *testing.T) {
		_, err := s.CreateSchedule("Conference", "2024-06-07", "2024-06-03", false)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("malformed_date", func(t *testing.T) {
		_, err := s.CreateSchedule("Conference", "soon", "2024-06-07", false)
		assert.True(t, errors.IsValidation(err))
	})

	assert.Empty(t, s.Schedules)
}

func TestUpdateScheduleRecomputesDates(t *testing.T) {
	s := newTestState(t)
	sched, err := s.CreateSchedule("Conference", "2024-06-03", "2024-06-07", true)
	require.NoError(t, err)

	updated, err := s.UpdateSchedule(sched.ID, "Conference", "2024-06-03", "2024-06-09", false)
	require.NoError(t, err)
	assert.Len(t, updated.ValidDates, 7)
	assert.True(t, updated.CoveredOn("2024-06-08"))
	assert.False(t, updated.EditedAt.IsZero())
}

// =============================================================================
// Query Tests
// =============================================================================

func TestSchedulesOn(t *testing.T) {
	s := newTestState(t)
	_, err := s.CreateSchedule("Conference", "2024-06-03", "2024-06-07", true)
	require.NoError(t, err)
	_, err = s.CreateSchedule("Sprint", "2024-06-05", "2024-06-12", false)
	require.NoError(t, err)

	assert.Len(t, s.SchedulesOn("2024-06-05"), 2)
	assert.Len(t, s.SchedulesOn("2024-06-08"), 1) // weekend, conference skips it
	assert.Empty(t, s.SchedulesOn("2024-07-01"))
}

func TestSearchSchedules(t *testing.T) {
	s := newTestState(t)
	_, err := s.CreateSchedule("Summer Conference", "2024-06-03", "2024-06-07", false)
	require.NoError(t, err)
	_, err = s.CreateSchedule("Sprint 12", "2024-06-10", "2024-06-14", false)
	require.NoError(t, err)

	assert.Len(t, s.SearchSchedules("conference"), 1)
	assert.Len(t, s.SearchSchedules(""), 2)
	assert.Empty(t, s.SearchSchedules("retreat"))
}

func TestSortedSchedulesByStartDate(t *testing.T) {
	s := newTestState(t)
	later, err := s.CreateSchedule("Later", "2024-07-01", "2024-07-02", false)
	require.NoError(t, err)
	earlier, err := s.CreateSchedule("Earlier", "2024-06-01", "2024-06-02", false)
	require.NoError(t, err)

	sorted := s.SortedSchedules()
	require.Len(t, sorted, 2)
	assert.Equal(t, earlier.ID, sorted[0].ID)
	assert.Equal(t, later.ID, sorted[1].ID)
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteScheduleClearsCalendarCoverage(t *testing.T) {
	s := newTestState(t)
	sched, err := s.CreateSchedule("Conference", "2024-06-03", "2024-06-07", true)
	require.NoError(t, err)
	assert.NotEmpty(t, s.SchedulesOn("2024-06-05"))

	require.NoError(t, s.DeleteSchedule(sched.ID))
	assert.Empty(t, s.SchedulesOn("2024-06-05"))
	assert.ErrorIs(t, s.DeleteSchedule(sched.ID), errors.ErrNotFound)
}

func TestClearSchedules(t *testing.T) {
	s := newTestState(t)
	_, err := s.CreateSchedule("A", "2024-06-03", "2024-06-04", false)
	require.NoError(t, err)
	_, err = s.CreateSchedule("B", "2024-06-05", "2024-06-06", false)
	require.NoError(t, err)

	require.NoError(t, s.ClearSchedules())
	assert.Empty(t, s.Schedules)
}
