package app

import (
	"sort"
	"time"

	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/model"
)

// IsAttended reports whether the given date carries an attendance mark.
func (s *State) IsAttended(dateKey string) bool {
	return s.Attendance[dateKey]
}

// Mark records attendance for a date: sets the mark and appends one log
// entry. Marking an already-marked date is a conflict; the existing state is
// preserved and no duplicate log row is created.
func (s *State) Mark(dateKey string) (*model.AttendanceLog, error) {
	if s.Attendance[dateKey] {
		return nil, errors.NewConflict("already attended on "+dateKey, errors.ErrAlreadyAttended)
	}

	entry := model.NewAttendanceLog(dateKey, s.now())
	s.Attendance[dateKey] = true
	s.AttendanceLog = append(s.AttendanceLog, entry)

	if err := s.persist(); err != nil {
		return nil, err
	}
	logging.DebugLog("attendance marked", logging.KeyDate, dateKey)
	return entry, nil
}

// MarkToday records attendance for the current day.
func (s *State) MarkToday() (*model.AttendanceLog, error) {
	return s.Mark(s.Today())
}

// ClockOut stamps a clock-out time on an open log entry.
func (s *State) ClockOut(id int64) (*model.AttendanceLog, error) {
	entry := s.findLog(id)
	if entry == nil {
		return nil, errors.ErrNotFound
	}
	if entry.IsClockedOut() {
		return nil, errors.NewConflict("already clocked out", errors.ErrAlreadyClockedOut)
	}
	entry.ClockedOutAt = s.now()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateLog edits a log entry's memo and timestamps. A zero clockedOut clears
// the clock-out. When both timestamps are set, check-in must not be later
// than clock-out.
func (s *State) UpdateLog(id int64, memo string, checkedIn, clockedOut time.Time) (*model.AttendanceLog, error) {
	entry := s.findLog(id)
	if entry == nil {
		return nil, errors.ErrNotFound
	}
	if !checkedIn.IsZero() && !clockedOut.IsZero() && checkedIn.After(clockedOut) {
		return nil, errors.NewValidation("check-in must not be later than clock-out",
			"Adjust the timestamps so check-in comes first")
	}

	entry.Memo = memo
	if !checkedIn.IsZero() {
		entry.CheckedInAt = checkedIn
	}
	entry.ClockedOutAt = clockedOut

	if err := s.persist(); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteLog removes one log entry and the attendance mark for its date.
func (s *State) DeleteLog(id int64) error {
	idx := -1
	for i, l := range s.AttendanceLog {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.ErrNotFound
	}

	prevLog := s.AttendanceLog
	date := prevLog[idx].Date
	marked := s.Attendance[date]

	s.AttendanceLog = append(append([]*model.AttendanceLog{}, prevLog[:idx]...), prevLog[idx+1:]...)
	delete(s.Attendance, date)

	if err := s.persist(); err != nil {
		s.AttendanceLog = prevLog
		if marked {
			s.Attendance[date] = true
		}
		return err
	}
	return nil
}

// DeleteLogsForDate removes every log entry for a date together with its
// mark, all-or-nothing: on a failed write the previous state is restored.
func (s *State) DeleteLogsForDate(dateKey string) (int, error) {
	prevLog := s.AttendanceLog
	marked := s.Attendance[dateKey]

	kept := make([]*model.AttendanceLog, 0, len(prevLog))
	removed := 0
	for _, l := range prevLog {
		if l.Date == dateKey {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	if removed == 0 && !marked {
		return 0, errors.ErrNotFound
	}

	s.AttendanceLog = kept
	delete(s.Attendance, dateKey)

	if err := s.persist(); err != nil {
		s.AttendanceLog = prevLog
		if marked {
			s.Attendance[dateKey] = true
		}
		return 0, err
	}
	logging.DebugLog("attendance records deleted",
		logging.KeyDate, dateKey, logging.KeyCount, removed)
	return removed, nil
}

// ClearAttendance removes every mark and log entry, all-or-nothing.
func (s *State) ClearAttendance() error {
	prevMarks, prevLog := s.Attendance, s.AttendanceLog
	s.Attendance = map[string]bool{}
	s.AttendanceLog = []*model.AttendanceLog{}
	if err := s.persist(); err != nil {
		s.Attendance, s.AttendanceLog = prevMarks, prevLog
		return err
	}
	return nil
}

// LogsForDate returns the log entries for a date.
func (s *State) LogsForDate(dateKey string) []*model.AttendanceLog {
	var logs []*model.AttendanceLog
	for _, l := range s.AttendanceLog {
		if l.Date == dateKey {
			logs = append(logs, l)
		}
	}
	return logs
}

// SortedLog returns the attendance log newest-first.
func (s *State) SortedLog() []*model.AttendanceLog {
	sorted := append([]*model.AttendanceLog{}, s.AttendanceLog...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckedInAt.After(sorted[j].CheckedInAt)
	})
	return sorted
}

// AttendedDays returns the number of marked days.
func (s *State) AttendedDays() int {
	count := 0
	for _, marked := range s.Attendance {
		if marked {
			count++
		}
	}
	return count
}

func (s *State) findLog(id int64) *model.AttendanceLog {
	for _, l := range s.AttendanceLog {
		if l.ID == id {
			return l
		}
	}
	return nil
}
