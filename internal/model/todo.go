package model

import "time"

// Todo is a task. An item lives in exactly one of the active or completed
// collections at a time; Completed and CompletedAt are set only while it is
// in the completed collection.
type Todo struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
	EditedAt    time.Time `json:"editedAt,omitempty"`
}

// NewTodo creates an active todo.
func NewTodo(text string, now time.Time) *Todo {
	return &Todo{
		ID:        NewID(now),
		Text:      text,
		CreatedAt: now,
	}
}

// Complete stamps the todo as completed at the given time.
func (t *Todo) Complete(now time.Time) {
	t.Completed = true
	t.CompletedAt = now
}

// Restore clears the completion state.
func (t *Todo) Restore() {
	t.Completed = false
	t.CompletedAt = time.Time{}
}
