package model

import "time"

// AttendanceLog is one check-in record for a calendar day. A day with at
// least one log entry also carries an attendance mark in the snapshot's
// date-keyed mark map.
type AttendanceLog struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	CheckedInAt  time.Time `json:"checkedInAt"`
	ClockedOutAt time.Time `json:"clockedOutAt,omitempty"`
	Memo         string    `json:"memo,omitempty"`
}

// NewAttendanceLog creates a log entry for the given date key, checked in now.
func NewAttendanceLog(dateKey string, now time.Time) *AttendanceLog {
	return &AttendanceLog{
		ID:          NewID(now),
		Date:        dateKey,
		CheckedInAt: now,
	}
}

// IsClockedOut reports whether the entry has a clock-out time.
func (l *AttendanceLog) IsClockedOut() bool {
	return !l.ClockedOutAt.IsZero()
}
