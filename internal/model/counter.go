package model

import "time"

// DayCounter counts days to or from a target date. The target may lie in the
// past or the future relative to today.
type DayCounter struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	TargetDate string    `json:"targetDate"`
	CreatedAt  time.Time `json:"createdAt"`
	EditedAt   time.Time `json:"editedAt,omitempty"`
}

// NewDayCounter creates a day counter.
func NewDayCounter(title, targetDate string, now time.Time) *DayCounter {
	return &DayCounter{
		ID:         NewID(now),
		Title:      title,
		TargetDate: targetDate,
		CreatedAt:  now,
	}
}

// CounterUrgency classifies a counter for display.
type CounterUrgency string

const (
	UrgencyToday  CounterUrgency = "today"
	UrgencyUrgent CounterUrgency = "urgent" // within the next three days
	UrgencyFuture CounterUrgency = "future"
	UrgencyPast   CounterUrgency = "past"
)

// Urgency classifies the signed days-remaining value for display.
func Urgency(daysLeft int) CounterUrgency {
	switch {
	case daysLeft == 0:
		return UrgencyToday
	case daysLeft < 0:
		return UrgencyPast
	case daysLeft <= 3:
		return UrgencyUrgent
	default:
		return UrgencyFuture
	}
}
