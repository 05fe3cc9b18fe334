package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/model"
)

// Renderer receives view refreshes from the coordinator. Implementations
// redraw whichever surface they own; the coordinator guarantees refreshes
// arrive only after the underlying mutation has been persisted.
type Renderer interface {
	RenderStats(stat Stat)
	RenderList(mode model.Mode)
	RenderCalendar()
}

// NopRenderer discards all refreshes.
type NopRenderer struct{}

func (NopRenderer) RenderStats(Stat)      {}
func (NopRenderer) RenderList(model.Mode) {}
func (NopRenderer) RenderCalendar()       {}

// Coordinator owns the view state: the selected mode, todo tab, calendar
// year, per-mode filters, the exclusive todo edit session, the memo editor
// session and the pending confirmation. Every mutation routed through it
// refreshes the stats, list and calendar views in that order once the write
// has gone through.
type Coordinator struct {
	state    *State
	renderer Renderer

	mode model.Mode
	tab  model.TodoTab
	year int

	filters     Filters
	editingTodo int64
	memoEdit    *MemoEditSession
	pending     *Confirmation
}

// NewCoordinator builds a coordinator over the given state. A nil renderer is
// replaced with the no-op renderer. The initial view is attendance mode on
// the current year.
func NewCoordinator(state *State, renderer Renderer) *Coordinator {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Coordinator{
		state:    state,
		renderer: renderer,
		mode:     model.ModeAttendance,
		tab:      model.TabActive,
		year:     state.Now().Year(),
	}
}

// State exposes the underlying state container.
func (c *Coordinator) State() *State {
	return c.state
}

// Mode returns the selected mode.
func (c *Coordinator) Mode() model.Mode {
	return c.mode
}

// Tab returns the selected todo tab.
func (c *Coordinator) Tab() model.TodoTab {
	return c.tab
}

// Year returns the selected calendar year.
func (c *Coordinator) Year() int {
	return c.year
}

// Filters returns the active per-mode filters.
func (c *Coordinator) Filters() Filters {
	return c.filters
}

// Stat returns the aggregate for the current mode, tab and year.
func (c *Coordinator) Stat() Stat {
	return c.state.ModeStat(c.mode, c.year, c.tab)
}

// refresh redraws the dependent views. Stats first, then the list, then the
// calendar.
func (c *Coordinator) refresh() {
	c.renderer.RenderStats(c.Stat())
	c.renderer.RenderList(c.mode)
	c.renderer.RenderCalendar()
}

// SwitchMode selects a mode and redraws every view. Switching away ends any
// in-flight todo edit without saving it.
func (c *Coordinator) SwitchMode(mode model.Mode) {
	if mode == c.mode {
		return
	}
	c.editingTodo = 0
	c.mode = mode
	logging.DebugLog("mode switched", logging.KeyMode, string(mode))
	c.refresh()
}

// SwitchTab selects the active or completed todo tab and redraws.
func (c *Coordinator) SwitchTab(tab model.TodoTab) {
	if tab == c.tab {
		return
	}
	c.editingTodo = 0
	c.tab = tab
	c.refresh()
}

// SetYear selects the calendar year and redraws.
func (c *Coordinator) SetYear(year int) {
	c.year = year
	c.refresh()
}

// NextYear advances the calendar one year.
func (c *Coordinator) NextYear() {
	c.SetYear(c.year + 1)
}

// PrevYear moves the calendar back one year.
func (c *Coordinator) PrevYear() {
	c.SetYear(c.year - 1)
}

// FilterTodosByDate restricts the todo list to one date. An empty key clears
// the filter.
func (c *Coordinator) FilterTodosByDate(dateKey string) {
	c.filters.TodoDate = dateKey
	c.renderer.RenderList(model.ModeTodo)
}

// FilterMemosByDate restricts the memo list to one creation date, displacing
// any search term. An empty key clears the filter.
func (c *Coordinator) FilterMemosByDate(dateKey string) {
	c.filters.MemoDate = dateKey
	c.renderer.RenderList(model.ModeMemo)
}

// FilterCountersByDate restricts the counter list to one target date. An
// empty key clears the filter.
func (c *Coordinator) FilterCountersByDate(dateKey string) {
	c.filters.CounterDate = dateKey
	c.renderer.RenderList(model.ModeCounter)
}

// SearchMemos sets the memo search term.
func (c *Coordinator) SearchMemos(term string) {
	c.filters.MemoSearch = term
	c.renderer.RenderList(model.ModeMemo)
}

// SearchSchedules sets the schedule search term.
func (c *Coordinator) SearchSchedules(term string) {
	c.filters.ScheduleSearch = term
	c.renderer.RenderList(model.ModeSchedule)
}

// ClearFilters drops every filter and search term and redraws the list.
func (c *Coordinator) ClearFilters() {
	c.filters = Filters{}
	c.renderer.RenderList(c.mode)
}

// MarkAttendance records attendance for a date and refreshes.
func (c *Coordinator) MarkAttendance(dateKey string) (*model.AttendanceLog, error) {
	entry, err := c.state.Mark(dateKey)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return entry, nil
}

// ClockOut stamps a clock-out on a log entry and refreshes.
func (c *Coordinator) ClockOut(id int64) (*model.AttendanceLog, error) {
	entry, err := c.state.ClockOut(id)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return entry, nil
}

// UpdateAttendanceLog edits a log entry and refreshes.
func (c *Coordinator) UpdateAttendanceLog(id int64, memo string, checkedIn, clockedOut time.Time) (*model.AttendanceLog, error) {
	entry, err := c.state.UpdateLog(id, memo, checkedIn, clockedOut)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return entry, nil
}

// CreateSchedule adds a schedule and refreshes.
func (c *Coordinator) CreateSchedule(title, startDate, endDate string, skipWeekends bool) (*model.Schedule, error) {
	sched, err := c.state.CreateSchedule(title, startDate, endDate, skipWeekends)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return sched, nil
}

// UpdateSchedule edits a schedule and refreshes.
func (c *Coordinator) UpdateSchedule(id int64, title, startDate, endDate string, skipWeekends bool) (*model.Schedule, error) {
	sched, err := c.state.UpdateSchedule(id, title, startDate, endDate, skipWeekends)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return sched, nil
}

// AddTodo creates an active todo and refreshes.
func (c *Coordinator) AddTodo(text string) (*model.Todo, error) {
	todo, err := c.state.AddTodo(text)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return todo, nil
}

// StartTodoEdit begins inline editing of an active todo. Only one todo is
// editable at a time; starting a new edit silently ends the previous one.
func (c *Coordinator) StartTodoEdit(id int64) error {
	if c.state.FindTodo(id) == nil {
		return errors.ErrNotFound
	}
	c.editingTodo = id
	return nil
}

// EditingTodo returns the id of the todo under edit, or zero.
func (c *Coordinator) EditingTodo() int64 {
	return c.editingTodo
}

// SaveTodoEdit commits the in-flight todo edit with the given text, ends the
// edit session and refreshes.
func (c *Coordinator) SaveTodoEdit(text string) (*model.Todo, error) {
	if c.editingTodo == 0 {
		return nil, errors.ErrNoPendingAction
	}
	todo, err := c.state.EditTodo(c.editingTodo, text)
	if err != nil {
		return nil, err
	}
	c.editingTodo = 0
	c.refresh()
	return todo, nil
}

// CancelTodoEdit ends the in-flight todo edit without saving.
func (c *Coordinator) CancelTodoEdit() {
	c.editingTodo = 0
}

// CompleteTodo moves a todo to the completed collection. Completing the todo
// under edit ends its edit session.
func (c *Coordinator) CompleteTodo(id int64) (*model.Todo, error) {
	todo, err := c.state.CompleteTodo(id)
	if err != nil {
		return nil, err
	}
	if c.editingTodo == id {
		c.editingTodo = 0
	}
	c.refresh()
	return todo, nil
}

// RestoreTodo moves a completed item back to the active collection.
func (c *Coordinator) RestoreTodo(id int64) (*model.Todo, error) {
	todo, err := c.state.RestoreTodo(id)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return todo, nil
}

// CreateMemo adds a memo and refreshes.
func (c *Coordinator) CreateMemo(title, content string) (*model.Memo, error) {
	memo, err := c.state.CreateMemo(title, content)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return memo, nil
}

// OpenMemoEditor begins a two-phase edit session on a memo. Opening a new
// session replaces any previous one.
func (c *Coordinator) OpenMemoEditor(id int64) (*MemoEditSession, error) {
	sess, err := c.state.BeginMemoEdit(id)
	if err != nil {
		return nil, err
	}
	c.memoEdit = sess
	return sess, nil
}

// MemoEditor returns the open memo edit session, or nil.
func (c *Coordinator) MemoEditor() *MemoEditSession {
	return c.memoEdit
}

// SaveMemoEdit commits the open session's drafts, closes the editor and
// refreshes.
func (c *Coordinator) SaveMemoEdit() error {
	if c.memoEdit == nil {
		return errors.ErrNoPendingAction
	}
	if err := c.state.CommitMemoEdit(c.memoEdit); err != nil {
		return err
	}
	c.memoEdit = nil
	c.refresh()
	return nil
}

// CloseMemoEditor closes the editor. A clean session closes immediately; a
// dirty one returns a discard confirmation instead, and the editor stays open
// until that confirmation is applied or cancelled.
func (c *Coordinator) CloseMemoEditor() *Confirmation {
	if c.memoEdit == nil {
		return nil
	}
	if !c.memoEdit.Dirty() {
		c.memoEdit = nil
		return nil
	}
	return c.request("Discard changes",
		"You have unsaved changes. Discard them?",
		func() error {
			if c.memoEdit != nil {
				c.memoEdit.Revert()
				c.memoEdit = nil
			}
			return nil
		})
}

// CreateCounter adds a day counter and refreshes.
func (c *Coordinator) CreateCounter(title, targetDate string) (*model.DayCounter, error) {
	counter, err := c.state.CreateCounter(title, targetDate)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return counter, nil
}

// UpdateCounter edits a counter and refreshes.
func (c *Coordinator) UpdateCounter(id int64, title, targetDate string) (*model.DayCounter, error) {
	counter, err := c.state.UpdateCounter(id, title, targetDate)
	if err != nil {
		return nil, err
	}
	c.refresh()
	return counter, nil
}

// request installs a confirmation, replacing any pending one.
func (c *Coordinator) request(title, message string, apply func() error) *Confirmation {
	c.pending = NewConfirmation(title, message, apply)
	return c.pending
}

// Pending returns the outstanding confirmation, or nil.
func (c *Coordinator) Pending() *Confirmation {
	return c.pending
}

// Confirm applies the pending confirmation if the token matches, then
// refreshes. A stale token from a replaced confirmation is rejected.
func (c *Coordinator) Confirm(token uuid.UUID) error {
	if c.pending == nil {
		return errors.ErrNoPendingAction
	}
	if c.pending.Token != token {
		return errors.ErrTokenMismatch
	}
	pending := c.pending
	c.pending = nil
	if err := pending.Apply(); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// CancelPending drops the outstanding confirmation without applying it.
func (c *Coordinator) CancelPending() {
	c.pending = nil
}

// RequestDeleteAttendance asks to remove every record for an attended date.
func (c *Coordinator) RequestDeleteAttendance(dateKey string) *Confirmation {
	return c.request("Delete attendance",
		fmt.Sprintf("Delete all attendance records for %s?", dateKey),
		func() error {
			_, err := c.state.DeleteLogsForDate(dateKey)
			return err
		})
}

// RequestDeleteLog asks to remove one attendance log entry.
func (c *Coordinator) RequestDeleteLog(id int64) *Confirmation {
	return c.request("Delete log entry",
		"Delete this attendance log entry?",
		func() error { return c.state.DeleteLog(id) })
}

// RequestDeleteSchedule asks to remove a schedule.
func (c *Coordinator) RequestDeleteSchedule(id int64) *Confirmation {
	title := "this schedule"
	if sched := c.state.FindSchedule(id); sched != nil {
		title = fmt.Sprintf("%q", sched.Title)
	}
	return c.request("Delete schedule",
		fmt.Sprintf("Delete %s?", title),
		func() error { return c.state.DeleteSchedule(id) })
}

// RequestDeleteTodo asks to remove a todo or completed item.
func (c *Coordinator) RequestDeleteTodo(id int64) *Confirmation {
	return c.request("Delete todo",
		"Delete this todo?",
		func() error { return c.state.DeleteTodo(id) })
}

// RequestDeleteMemo asks to remove a memo.
func (c *Coordinator) RequestDeleteMemo(id int64) *Confirmation {
	title := "this memo"
	if memo := c.state.FindMemo(id); memo != nil {
		title = fmt.Sprintf("%q", memo.Title)
	}
	return c.request("Delete memo",
		fmt.Sprintf("Delete %s?", title),
		func() error { return c.state.DeleteMemo(id) })
}

// RequestDeleteCounter asks to remove a day counter.
func (c *Coordinator) RequestDeleteCounter(id int64) *Confirmation {
	title := "this counter"
	if counter := c.state.FindCounter(id); counter != nil {
		title = fmt.Sprintf("%q", counter.Title)
	}
	return c.request("Delete counter",
		fmt.Sprintf("Delete %s?", title),
		func() error { return c.state.DeleteCounter(id) })
}

// RequestClear asks to empty a whole collection for a mode. For todo mode the
// current tab decides whether the active or completed collection is cleared.
func (c *Coordinator) RequestClear(mode model.Mode) *Confirmation {
	switch mode {
	case model.ModeAttendance:
		return c.request("Clear attendance",
			"Delete every attendance mark and log entry?",
			func() error { return c.state.ClearAttendance() })
	case model.ModeSchedule:
		return c.request("Clear schedules",
			"Delete every schedule?",
			func() error { return c.state.ClearSchedules() })
	case model.ModeTodo:
		if c.tab == model.TabCompleted {
			return c.request("Clear completed",
				"Delete every completed todo?",
				func() error { return c.state.ClearCompleted() })
		}
		return c.request("Clear todos",
			"Delete every active todo?",
			func() error { return c.state.ClearTodos() })
	case model.ModeMemo:
		return c.request("Clear memos",
			"Delete every memo?",
			func() error { return c.state.ClearMemos() })
	case model.ModeCounter:
		return c.request("Clear counters",
			"Delete every day counter?",
			func() error { return c.state.ClearCounters() })
	}
	return nil
}
