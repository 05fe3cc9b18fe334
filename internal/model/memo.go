package model

import (
	"fmt"
	"time"
)

// Memo is a titled note.
type Memo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	EditedAt  time.Time `json:"editedAt,omitempty"`
}

// NewMemo creates a memo. A blank title defaults to "Memo {N}" where N is the
// current memo count plus one.
func NewMemo(title, content string, existingCount int, now time.Time) *Memo {
	if title == "" {
		title = DefaultMemoTitle(existingCount)
	}
	return &Memo{
		ID:        NewID(now),
		Title:     title,
		Content:   content,
		CreatedAt: now,
	}
}

// DefaultMemoTitle returns the default title for the next memo given the
// current count.
func DefaultMemoTitle(existingCount int) string {
	return fmt.Sprintf("Memo %d", existingCount+1)
}

// Preview returns the content truncated to 100 runes for list display.
func (m *Memo) Preview() string {
	runes := []rune(m.Content)
	if len(runes) <= 100 {
		return m.Content
	}
	return string(runes[:100]) + "..."
}
