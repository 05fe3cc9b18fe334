package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daycheck/daycheck/internal/model"
)

func testFormatter() (*Formatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Formatter{
		Writer:    buf,
		Format:    FormatCLI,
		ColorMode: ColorNever,
	}, buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestFormatterPrint(t *testing.T) {
	f, buf := testFormatter()
	f.Printf("count: %d\n", 3)
	f.Println("done")
	assert.Equal(t, "count: 3\ndone\n", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	f, buf := testFormatter()
	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := testFormatter()

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto with a non-file writer disables color
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

// =============================================================================
// DaysText Tests
// =============================================================================

func TestDaysText(t *testing.T) {
	assert.Equal(t, "Today", DaysText(0))
	assert.Equal(t, "1 day left", DaysText(1))
	assert.Equal(t, "14 days left", DaysText(14))
	assert.Equal(t, "1 day ago", DaysText(-1))
	assert.Equal(t, "30 days ago", DaysText(-30))
}

// =============================================================================
// ScheduleLabel Tests
// =============================================================================

func TestScheduleLabel(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	t.Run("multi_day_with_index", func(t *testing.T) {
		s := model.NewSchedule("Conference", "2024-06-03", "2024-06-07", true, now)
		assert.Equal(t, "Conference (3/5)", ScheduleLabel(s, "2024-06-05"))
		assert.Equal(t, "Conference (1/5)", ScheduleLabel(s, "2024-06-03"))
	})

	t.Run("multi_day_uncovered_date", func(t *testing.T) {
		s := model.NewSchedule("Conference", "2024-06-03", "2024-06-07", true, now)
		assert.Equal(t, "Conference", ScheduleLabel(s, "2024-06-08"))
	})

	t.Run("single_day_bare_title", func(t *testing.T) {
		s := model.NewSchedule("Dentist", "2024-06-05", "2024-06-05", false, now)
		assert.Equal(t, "Dentist", ScheduleLabel(s, "2024-06-05"))
	})
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	f, buf := testFormatter()
	cli := NewCLIFormatter(f)

	cli.Success("done")
	cli.Warning("careful")
	cli.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "! careful")
	assert.Contains(t, out, "✗ failed")
}

func TestPrintTable(t *testing.T) {
	f, buf := testFormatter()
	cli := NewCLIFormatter(f)

	cli.PrintTable([]string{"ID", "TITLE"}, []TableRow{
		{Columns: []string{"1", "Conference"}},
		{Columns: []string{"2", "Sprint"}},
	})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Conference")
	assert.Contains(t, out, "Sprint")
}

func TestPrintTableEmptyRows(t *testing.T) {
	f, buf := testFormatter()
	NewCLIFormatter(f).PrintTable([]string{"ID"}, nil)
	assert.Empty(t, buf.String())
}

// =============================================================================
// JSON Output Tests
// =============================================================================

func TestNewLogOutput(t *testing.T) {
	now := time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local)
	entry := model.NewAttendanceLog("2024-06-05", now)

	out := NewLogOutput(entry)
	assert.Equal(t, "2024-06-05", out.Date)
	assert.Empty(t, out.ClockedOutAt)

	entry.ClockedOutAt = now.Add(8 * time.Hour)
	out = NewLogOutput(entry)
	assert.NotEmpty(t, out.ClockedOutAt)
}

func TestNewCountersResponse(t *testing.T) {
	now := time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local)
	counters := []*model.DayCounter{
		model.NewDayCounter("Visa", "2024-06-10", now),
	}

	resp := NewCountersResponse(counters, func(*model.DayCounter) int { return 5 })
	require.Len(t, resp.Counters, 1)
	assert.Equal(t, 5, resp.Counters[0].Days)
	assert.Equal(t, "5 days left", resp.Counters[0].Remaining)
	assert.Equal(t, 1, resp.TotalCount)
}
