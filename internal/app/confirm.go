package app

import "github.com/google/uuid"

// Confirmation is a pending destructive action. The action is captured as a
// deferred closure and runs only when Confirm is called with the matching
// token. At most one confirmation is pending at a time; requesting a new one
// replaces any outstanding request.
type Confirmation struct {
	Token   uuid.UUID
	Title   string
	Message string
	apply   func() error
}

// NewConfirmation builds a confirmation around a deferred action.
func NewConfirmation(title, message string, apply func() error) *Confirmation {
	return &Confirmation{
		Token:   uuid.New(),
		Title:   title,
		Message: message,
		apply:   apply,
	}
}

// Apply runs the deferred action.
func (c *Confirmation) Apply() error {
	return c.apply()
}
