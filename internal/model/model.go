// Package model defines the domain models for Daycheck.
package model

import (
	"fmt"
	"time"
)

// Mode identifies the active top-level view. It gates which collection drives
// calendar styling, list rendering and stats. The set is closed: every switch
// over Mode must handle all five values.
type Mode string

const (
	ModeAttendance Mode = "attendance"
	ModeSchedule   Mode = "schedule"
	ModeTodo       Mode = "todo"
	ModeMemo       Mode = "memo"
	ModeCounter    Mode = "counter"
)

// Modes lists all modes in display order.
var Modes = []Mode{ModeAttendance, ModeSchedule, ModeTodo, ModeMemo, ModeCounter}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAttendance, ModeSchedule, ModeTodo, ModeMemo, ModeCounter:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// TodoTab selects between the active and completed todo sub-views.
type TodoTab string

const (
	TabActive    TodoTab = "todo"
	TabCompleted TodoTab = "completed"
)

// NewID derives an entity identifier from a clock reading in milliseconds.
// Collisions are acceptable for single-user use.
func NewID(now time.Time) int64 {
	return now.UnixMilli()
}
