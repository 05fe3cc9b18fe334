package app

import (
	"sort"
	"strings"

	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/validate"
)

// CreateSchedule adds a schedule with its valid dates computed eagerly.
func (s *State) CreateSchedule(title, startDate, endDate string, skipWeekends bool) (*model.Schedule, error) {
	if err := validate.Title("title", title); err != nil {
		return nil, err
	}
	if err := validate.DateRange(startDate, endDate); err != nil {
		return nil, err
	}

	sched := model.NewSchedule(strings.TrimSpace(title), startDate, endDate, skipWeekends, s.now())
	s.Schedules = append(s.Schedules, sched)

	if err := s.persist(); err != nil {
		return nil, err
	}
	logging.DebugLog("schedule created", logging.KeyID, sched.ID,
		logging.KeyCount, len(sched.ValidDates))
	return sched, nil
}

// UpdateSchedule replaces a schedule's title, bounds and weekend flag. The
// valid-dates cache is invalidated and recomputed before the update returns,
// so no query can observe a stale expansion.
func (s *State) UpdateSchedule(id int64, title, startDate, endDate string, skipWeekends bool) (*model.Schedule, error) {
	sched := s.FindSchedule(id)
	if sched == nil {
		return nil, errors.ErrNotFound
	}
	if err := validate.Title("title", title); err != nil {
		return nil, err
	}
	if err := validate.DateRange(startDate, endDate); err != nil {
		return nil, err
	}

	sched.Title = strings.TrimSpace(title)
	sched.SetBounds(startDate, endDate, skipWeekends)
	sched.EditedAt = s.now()
	sched.Dates()

	if err := s.persist(); err != nil {
		return nil, err
	}
	return sched, nil
}

// DeleteSchedule removes a schedule.
func (s *State) DeleteSchedule(id int64) error {
	for i, sched := range s.Schedules {
		if sched.ID == id {
			s.Schedules = append(append([]*model.Schedule{}, s.Schedules[:i]...), s.Schedules[i+1:]...)
			return s.persist()
		}
	}
	return errors.ErrNotFound
}

// ClearSchedules removes every schedule, all-or-nothing.
func (s *State) ClearSchedules() error {
	prev := s.Schedules
	s.Schedules = []*model.Schedule{}
	if err := s.persist(); err != nil {
		s.Schedules = prev
		return err
	}
	return nil
}

// FindSchedule returns the schedule with the given id, or nil.
func (s *State) FindSchedule(id int64) *model.Schedule {
	for _, sched := range s.Schedules {
		if sched.ID == id {
			return sched
		}
	}
	return nil
}

// SchedulesOn returns every schedule covering the given date.
func (s *State) SchedulesOn(dateKey string) []*model.Schedule {
	var covering []*model.Schedule
	for _, sched := range s.Schedules {
		if sched.CoveredOn(dateKey) {
			covering = append(covering, sched)
		}
	}
	return covering
}

// SearchSchedules returns schedules whose title contains term,
// case-insensitively. An empty term matches everything.
func (s *State) SearchSchedules(term string) []*model.Schedule {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.SortedSchedules()
	}
	var matched []*model.Schedule
	for _, sched := range s.SortedSchedules() {
		if strings.Contains(strings.ToLower(sched.Title), term) {
			matched = append(matched, sched)
		}
	}
	return matched
}

// SortedSchedules returns schedules ordered by start date ascending.
func (s *State) SortedSchedules() []*model.Schedule {
	sorted := append([]*model.Schedule{}, s.Schedules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate < sorted[j].StartDate
	})
	return sorted
}
