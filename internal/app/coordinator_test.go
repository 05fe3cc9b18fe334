package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
)

// recordingRenderer captures the refresh sequence the coordinator emits.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) RenderStats(Stat)      { r.calls = append(r.calls, "stats") }
func (r *recordingRenderer) RenderList(model.Mode) { r.calls = append(r.calls, "list") }
func (r *recordingRenderer) RenderCalendar()       { r.calls = append(r.calls, "calendar") }

func (r *recordingRenderer) reset() { r.calls = nil }

func newTestCoordinator(t *testing.T) (*Coordinator, *recordingRenderer) {
	t.Helper()
	s := newTestState(t)
	r := &recordingRenderer{}
	return NewCoordinator(s, r), r
}

// =============================================================================
// View State Tests
// =============================================================================

func TestCoordinatorDefaults(t *testing.T) {
	c, _ := newTestCoordinator(t)
	assert.Equal(t, model.ModeAttendance, c.Mode())
	assert.Equal(t, model.TabActive, c.Tab())
	assert.Equal(t, 2024, c.Year())
}

func TestSwitchModeRefreshOrder(t *testing.T) {
	c, r := newTestCoordinator(t)

	c.SwitchMode(model.ModeSchedule)
	assert.Equal(t, model.ModeSchedule, c.Mode())
	assert.Equal(t, []string{"stats", "list", "calendar"}, r.calls)

	r.reset()
	c.SwitchMode(model.ModeSchedule)
	assert.Empty(t, r.calls) // same mode is a no-op
}

func TestYearNavigation(t *testing.T) {
	c, _ := newTestCoordinator(t)
	c.NextYear()
	assert.Equal(t, 2025, c.Year())
	c.PrevYear()
	c.PrevYear()
	assert.Equal(t, 2023, c.Year())
}

func TestMutationRefreshesAfterWrite(t *testing.T) {
	c, r := newTestCoordinator(t)
	r.reset()

	_, err := c.AddTodo("Write report")
	require.NoError(t, err)
	assert.Equal(t, []string{"stats", "list", "calendar"}, r.calls)

	r.reset()
	_, err = c.AddTodo("   ")
	assert.Error(t, err)
	assert.Empty(t, r.calls) // rejected input renders nothing
}

func TestFilterSettersRenderListOnly(t *testing.T) {
	c, r := newTestCoordinator(t)
	r.reset()

	c.FilterTodosByDate("2024-06-05")
	assert.Equal(t, []string{"list"}, r.calls)
	assert.Equal(t, "2024-06-05", c.Filters().TodoDate)

	c.ClearFilters()
	assert.Equal(t, Filters{}, c.Filters())
}

// =============================================================================
// Todo Edit Exclusivity Tests
// =============================================================================

func TestTodoEditExclusive(t *testing.T) {
	c, _ := newTestCoordinator(t)
	first, err := c.AddTodo("first")
	require.NoError(t, err)
	second, err := c.AddTodo("second")
	require.NoError(t, err)

	require.NoError(t, c.StartTodoEdit(first.ID))
	assert.Equal(t, first.ID, c.EditingTodo())

	// Starting a new edit silently ends the previous one
	require.NoError(t, c.StartTodoEdit(second.ID))
	assert.Equal(t, second.ID, c.EditingTodo())

	_, err = c.SaveTodoEdit("second, edited")
	require.NoError(t, err)
	assert.Zero(t, c.EditingTodo())
	assert.Equal(t, "second, edited", second.Text)
	assert.Equal(t, "first", first.Text)
}

func TestSaveTodoEditWithoutSession(t *testing.T) {
	c, _ := newTestCoordinator(t)
	_, err := c.SaveTodoEdit("anything")
	assert.ErrorIs(t, err, errors.ErrNoPendingAction)
}

func TestCompleteTodoEndsItsEdit(t *testing.T) {
	c, _ := newTestCoordinator(t)
	todo, err := c.AddTodo("under edit")
	require.NoError(t, err)
	require.NoError(t, c.StartTodoEdit(todo.ID))

	_, err = c.CompleteTodo(todo.ID)
	require.NoError(t, err)
	assert.Zero(t, c.EditingTodo())
}

func TestSwitchModeEndsTodoEdit(t *testing.T) {
	c, _ := newTestCoordinator(t)
	todo, err := c.AddTodo("under edit")
	require.NoError(t, err)
	require.NoError(t, c.StartTodoEdit(todo.ID))

	c.SwitchMode(model.ModeMemo)
	assert.Zero(t, c.EditingTodo())
}

// =============================================================================
// Memo Editor Tests
// =============================================================================

func TestMemoEditorCleanClose(t *testing.T) {
	c, _ := newTestCoordinator(t)
	memo, err := c.CreateMemo("Airport", "Parking B14")
	require.NoError(t, err)

	_, err = c.OpenMemoEditor(memo.ID)
	require.NoError(t, err)
	assert.Nil(t, c.CloseMemoEditor())
	assert.Nil(t, c.MemoEditor())
}

func TestMemoEditorDirtyCloseRequiresConfirmation(t *testing.T) {
	c, _ := newTestCoordinator(t)
	memo, err := c.CreateMemo("Airport", "Parking B14")
	require.NoError(t, err)

	sess, err := c.OpenMemoEditor(memo.ID)
	require.NoError(t, err)
	sess.DraftContent = "Parking B15"

	conf := c.CloseMemoEditor()
	require.NotNil(t, conf)
	assert.NotNil(t, c.MemoEditor()) // editor stays open until confirmed

	require.NoError(t, c.Confirm(conf.Token))
	assert.Nil(t, c.MemoEditor())
	assert.Equal(t, "Parking B14", memo.Content) // drafts discarded
}

func TestMemoEditorSave(t *testing.T) {
	c, _ := newTestCoordinator(t)
	memo, err := c.CreateMemo("Airport", "Parking B14")
	require.NoError(t, err)

	sess, err := c.OpenMemoEditor(memo.ID)
	require.NoError(t, err)
	sess.DraftContent = "Parking B15"

	require.NoError(t, c.SaveMemoEdit())
	assert.Nil(t, c.MemoEditor())
	assert.Equal(t, "Parking B15", memo.Content)
}

// =============================================================================
// Confirmation Protocol Tests
// =============================================================================

func TestConfirmationFlow(t *testing.T) {
	c, _ := newTestCoordinator(t)
	sched, err := c.CreateSchedule("Conference", "2024-06-03", "2024-06-07", true)
	require.NoError(t, err)

	conf := c.RequestDeleteSchedule(sched.ID)
	require.NotNil(t, conf)
	assert.Same(t, conf, c.Pending())

	// Nothing is deleted until the token comes back
	assert.NotNil(t, c.State().FindSchedule(sched.ID))

	require.NoError(t, c.Confirm(conf.Token))
	assert.Nil(t, c.Pending())
	assert.Nil(t, c.State().FindSchedule(sched.ID))
	assert.Empty(t, c.State().SchedulesOn("2024-06-05"))
}

func TestConfirmTokenMismatch(t *testing.T) {
	c, _ := newTestCoordinator(t)
	todo, err := c.AddTodo("keep me")
	require.NoError(t, err)

	c.RequestDeleteTodo(todo.ID)
	err = c.Confirm(uuid.New())
	assert.ErrorIs(t, err, errors.ErrTokenMismatch)
	assert.NotNil(t, c.State().FindTodo(todo.ID))
}

func TestConfirmWithoutPending(t *testing.T) {
	c, _ := newTestCoordinator(t)
	err := c.Confirm(uuid.New())
	assert.ErrorIs(t, err, errors.ErrNoPendingAction)
}

func TestNewRequestReplacesPending(t *testing.T) {
	c, _ := newTestCoordinator(t)
	first, err := c.AddTodo("first")
	require.NoError(t, err)
	second, err := c.AddTodo("second")
	require.NoError(t, err)

	stale := c.RequestDeleteTodo(first.ID)
	fresh := c.RequestDeleteTodo(second.ID)
	assert.NotEqual(t, stale.Token, fresh.Token)

	// The replaced token is rejected
	err = c.Confirm(stale.Token)
	assert.ErrorIs(t, err, errors.ErrTokenMismatch)

	require.NoError(t, c.Confirm(fresh.Token))
	assert.NotNil(t, c.State().FindTodo(first.ID))
	assert.Nil(t, c.State().FindTodo(second.ID))
}

func TestCancelPending(t *testing.T) {
	c, _ := newTestCoordinator(t)
	todo, err := c.AddTodo("keep me")
	require.NoError(t, err)

	conf := c.RequestDeleteTodo(todo.ID)
	c.CancelPending()
	assert.Nil(t, c.Pending())

	err = c.Confirm(conf.Token)
	assert.ErrorIs(t, err, errors.ErrNoPendingAction)
	assert.NotNil(t, c.State().FindTodo(todo.ID))
}

func TestRequestClearPerMode(t *testing.T) {
	c, _ := newTestCoordinator(t)
	_, err := c.AddTodo("active")
	require.NoError(t, err)
	done, err := c.AddTodo("done")
	require.NoError(t, err)
	_, err = c.CompleteTodo(done.ID)
	require.NoError(t, err)

	// Active tab clears only the active collection
	conf := c.RequestClear(model.ModeTodo)
	require.NoError(t, c.Confirm(conf.Token))
	assert.Empty(t, c.State().Todos)
	assert.Len(t, c.State().Completed, 1)

	c.SwitchTab(model.TabCompleted)
	conf = c.RequestClear(model.ModeTodo)
	require.NoError(t, c.Confirm(conf.Token))
	assert.Empty(t, c.State().Completed)
}
