package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daycheck/daycheck/internal/model"
)

func testGateway(t *testing.T) *Gateway {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGateway(db)
}

func putRaw(t *testing.T, g *Gateway, data []byte) {
	t.Helper()
	require.NoError(t, g.db.Set(SnapshotKey, data))
}

// =============================================================================
// Round-Trip Tests
// =============================================================================

func TestSnapshotRoundTrip(t *testing.T) {
	g := testGateway(t)
	now := time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local)

	snap := EmptySnapshot()
	snap.AttendanceData["2024-06-05"] = true
	snap.AttendanceLog = append(snap.AttendanceLog, model.NewAttendanceLog("2024-06-05", now))
	snap.SchedulesData = append(snap.SchedulesData,
		model.NewSchedule("Conference", "2024-06-03", "2024-06-07", true, now))
	snap.TodoData = append(snap.TodoData, model.NewTodo("Write report", now))
	snap.MemoData = append(snap.MemoData, model.NewMemo("Airport", "Parking B14", 0, now))
	snap.CounterData = append(snap.CounterData,
		model.NewDayCounter("Visa renewal", "2024-09-15", now))

	require.NoError(t, g.Save(snap))

	loaded, err := g.Load()
	require.NoError(t, err)

	assert.True(t, loaded.AttendanceData["2024-06-05"])
	require.Len(t, loaded.AttendanceLog, 1)
	assert.Equal(t, "2024-06-05", loaded.AttendanceLog[0].Date)
	require.Len(t, loaded.SchedulesData, 1)
	assert.Equal(t, "Conference", loaded.SchedulesData[0].Title)
	assert.Len(t, loaded.SchedulesData[0].ValidDates, 5)
	require.Len(t, loaded.TodoData, 1)
	assert.Equal(t, "Write report", loaded.TodoData[0].Text)
	assert.Len(t, loaded.MemoData, 1)
	assert.Len(t, loaded.CounterData, 1)
}

func TestLoadMissingKey(t *testing.T) {
	g := testGateway(t)

	snap, err := g.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.AttendanceData)
	assert.Empty(t, snap.TodoData)
	assert.NotNil(t, snap.AttendanceData)
	assert.NotNil(t, snap.SchedulesData)
}

// =============================================================================
// Corruption Recovery Tests
// =============================================================================

func TestLoadCorruptBlob(t *testing.T) {
	g := testGateway(t)
	putRaw(t, g, []byte("{not json at all"))

	snap, err := g.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.AttendanceData)
	assert.Empty(t, snap.TodoData)
}

func TestLoadCorruptField(t *testing.T) {
	g := testGateway(t)
	// todoData has the wrong shape; the rest must survive
	putRaw(t, g, []byte(`{
		"attendanceData": {"2024-06-05": true},
		"todoData": "oops",
		"memoData": [{"id": 1, "title": "Kept", "content": "x"}]
	}`))

	snap, err := g.Load()
	require.NoError(t, err)
	assert.True(t, snap.AttendanceData["2024-06-05"])
	assert.Empty(t, snap.TodoData)
	require.Len(t, snap.MemoData, 1)
	assert.Equal(t, "Kept", snap.MemoData[0].Title)
}

func TestLoadNullField(t *testing.T) {
	g := testGateway(t)
	putRaw(t, g, []byte(`{"counterData": null, "attendanceData": {"2024-01-01": true}}`))

	snap, err := g.Load()
	require.NoError(t, err)
	assert.NotNil(t, snap.CounterData)
	assert.Empty(t, snap.CounterData)
	assert.True(t, snap.AttendanceData["2024-01-01"])
}

func TestLoadRecomputesMissingValidDates(t *testing.T) {
	g := testGateway(t)
	putRaw(t, g, []byte(`{
		"schedulesData": [{
			"id": 1,
			"title": "Conference",
			"startDate": "2024-06-03",
			"endDate": "2024-06-07",
			"skipWeekends": true
		}]
	}`))

	snap, err := g.Load()
	require.NoError(t, err)
	require.Len(t, snap.SchedulesData, 1)
	assert.Equal(t, []string{
		"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07",
	}, snap.SchedulesData[0].ValidDates)
}

func TestSaveOverwrites(t *testing.T) {
	g := testGateway(t)

	first := EmptySnapshot()
	first.AttendanceData["2024-06-05"] = true
	require.NoError(t, g.Save(first))

	second := EmptySnapshot()
	require.NoError(t, g.Save(second))

	loaded, err := g.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.AttendanceData)
}
