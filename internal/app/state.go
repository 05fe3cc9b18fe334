// Package app implements the Daycheck domain engine: the record stores over a
// single application-state container, per-mode filters and stats, the
// view-state coordinator, and the confirmation protocol for destructive
// operations.
package app

import (
	"time"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/storage"
)

// State is the single container for all record collections. Every collection
// is owned exclusively by its store methods; mutations persist the whole
// snapshot before dependent views are recomputed, so a view is never rendered
// from state that has not been written out.
type State struct {
	Attendance    map[string]bool
	AttendanceLog []*model.AttendanceLog
	Schedules     []*model.Schedule
	Todos         []*model.Todo
	Completed     []*model.Todo
	Memos         []*model.Memo
	Counters      []*model.DayCounter

	gateway *storage.Gateway
	now     func() time.Time
}

// NewState creates a state container backed by the given gateway and restores
// the persisted snapshot. A nil gateway keeps the state purely in memory.
func NewState(gateway *storage.Gateway) (*State, error) {
	s := &State{
		gateway: gateway,
		now:     time.Now,
	}
	snap := storage.EmptySnapshot()
	if gateway != nil {
		loaded, err := gateway.Load()
		if err != nil {
			return nil, errors.Wrap(err, "loading state")
		}
		snap = loaded
	}
	s.restore(snap)
	return s, nil
}

// SetClock overrides the state's clock. Test hook.
func (s *State) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the state's current time.
func (s *State) Now() time.Time {
	return s.now()
}

// Today returns the date key for the current day.
func (s *State) Today() string {
	return dates.Key(s.now())
}

func (s *State) restore(snap *storage.Snapshot) {
	s.Attendance = snap.AttendanceData
	s.AttendanceLog = snap.AttendanceLog
	s.Schedules = snap.SchedulesData
	s.Todos = snap.TodoData
	s.Completed = snap.CompletedData
	s.Memos = snap.MemoData
	s.Counters = snap.CounterData
}

func (s *State) snapshot() *storage.Snapshot {
	return &storage.Snapshot{
		AttendanceData: s.Attendance,
		AttendanceLog:  s.AttendanceLog,
		SchedulesData:  s.Schedules,
		TodoData:       s.Todos,
		CompletedData:  s.Completed,
		MemoData:       s.Memos,
		CounterData:    s.Counters,
	}
}

// persist writes the current snapshot through the gateway. Every mutator must
// call it before returning control.
func (s *State) persist() error {
	if s.gateway == nil {
		return nil
	}
	if err := s.gateway.Save(s.snapshot()); err != nil {
		logging.Error("saving snapshot failed", logging.KeyError, err.Error())
		return errors.Wrap(err, "saving snapshot")
	}
	return nil
}
