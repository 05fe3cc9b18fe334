package output

import (
	"time"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/model"
)

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatResponse represents a mode aggregate in JSON.
type StatResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Year  int    `json:"year"`
}

// NewStatResponse creates a StatResponse from a Stat.
func NewStatResponse(stat app.Stat, year int) *StatResponse {
	return &StatResponse{Label: stat.Label, Count: stat.Count, Year: year}
}

// LogOutput represents an attendance log entry in JSON output.
type LogOutput struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	CheckedInAt  string `json:"checked_in_at"`
	ClockedOutAt string `json:"clocked_out_at,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// NewLogOutput creates a LogOutput from an AttendanceLog.
func NewLogOutput(e *model.AttendanceLog) *LogOutput {
	out := &LogOutput{
		ID:          e.ID,
		Date:        e.Date,
		CheckedInAt: e.CheckedInAt.Format(time.RFC3339),
		Memo:        e.Memo,
	}
	if e.IsClockedOut() {
		out.ClockedOutAt = e.ClockedOutAt.Format(time.RFC3339)
	}
	return out
}

// LogsResponse represents the attendance log list in JSON.
type LogsResponse struct {
	Entries    []*LogOutput `json:"entries"`
	TotalCount int          `json:"total_count"`
}

// NewLogsResponse creates a LogsResponse from log entries.
func NewLogsResponse(entries []*model.AttendanceLog) *LogsResponse {
	outputs := make([]*LogOutput, len(entries))
	for i, e := range entries {
		outputs[i] = NewLogOutput(e)
	}
	return &LogsResponse{Entries: outputs, TotalCount: len(outputs)}
}

// ScheduleOutput represents a schedule in JSON output.
type ScheduleOutput struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	SkipWeekends bool     `json:"skip_weekends"`
	ValidDates   []string `json:"valid_dates"`
}

// NewScheduleOutput creates a ScheduleOutput from a Schedule.
func NewScheduleOutput(s *model.Schedule) *ScheduleOutput {
	return &ScheduleOutput{
		ID:           s.ID,
		Title:        s.Title,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		SkipWeekends: s.SkipWeekends,
		ValidDates:   s.Dates(),
	}
}

// SchedulesResponse represents the schedule list in JSON.
type SchedulesResponse struct {
	Schedules  []*ScheduleOutput `json:"schedules"`
	TotalCount int               `json:"total_count"`
}

// NewSchedulesResponse creates a SchedulesResponse from schedules.
func NewSchedulesResponse(schedules []*model.Schedule) *SchedulesResponse {
	outputs := make([]*ScheduleOutput, len(schedules))
	for i, s := range schedules {
		outputs[i] = NewScheduleOutput(s)
	}
	return &SchedulesResponse{Schedules: outputs, TotalCount: len(outputs)}
}

// TodoOutput represents a todo in JSON output.
type TodoOutput struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// NewTodoOutput creates a TodoOutput from a Todo.
func NewTodoOutput(t *model.Todo) *TodoOutput {
	out := &TodoOutput{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if !t.CompletedAt.IsZero() {
		out.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return out
}

// TodosResponse represents a todo list in JSON.
type TodosResponse struct {
	Todos      []*TodoOutput `json:"todos"`
	TotalCount int           `json:"total_count"`
}

// NewTodosResponse creates a TodosResponse from todos.
func NewTodosResponse(todos []*model.Todo) *TodosResponse {
	outputs := make([]*TodoOutput, len(todos))
	for i, t := range todos {
		outputs[i] = NewTodoOutput(t)
	}
	return &TodosResponse{Todos: outputs, TotalCount: len(outputs)}
}

// MemoOutput represents a memo in JSON output.
type MemoOutput struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// NewMemoOutput creates a MemoOutput from a Memo.
func NewMemoOutput(m *model.Memo) *MemoOutput {
	return &MemoOutput{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// MemosResponse represents the memo list in JSON.
type MemosResponse struct {
	Memos      []*MemoOutput `json:"memos"`
	TotalCount int           `json:"total_count"`
}

// NewMemosResponse creates a MemosResponse from memos.
func NewMemosResponse(memos []*model.Memo) *MemosResponse {
	outputs := make([]*MemoOutput, len(memos))
	for i, m := range memos {
		outputs[i] = NewMemoOutput(m)
	}
	return &MemosResponse{Memos: outputs, TotalCount: len(outputs)}
}

// CounterOutput represents a day counter in JSON output.
type CounterOutput struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	TargetDate string `json:"target_date"`
	Days       int    `json:"days"`
	Remaining  string `json:"remaining"`
}

// NewCounterOutput creates a CounterOutput from a DayCounter.
func NewCounterOutput(c *model.DayCounter, days int) *CounterOutput {
	return &CounterOutput{
		ID:         c.ID,
		Title:      c.Title,
		TargetDate: c.TargetDate,
		Days:       days,
		Remaining:  DaysText(days),
	}
}

// CountersResponse represents the counter list in JSON.
type CountersResponse struct {
	Counters   []*CounterOutput `json:"counters"`
	TotalCount int              `json:"total_count"`
}

// NewCountersResponse creates a CountersResponse from counters.
func NewCountersResponse(counters []*model.DayCounter, daysFor func(*model.DayCounter) int) *CountersResponse {
	outputs := make([]*CounterOutput, len(counters))
	for i, c := range counters {
		outputs[i] = NewCounterOutput(c, daysFor(c))
	}
	return &CountersResponse{Counters: outputs, TotalCount: len(outputs)}
}
