package app

import (
	"sort"
	"strings"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/validate"
)

// CreateCounter adds a day counter. The target date may lie in the past.
func (s *State) CreateCounter(title, targetDate string) (*model.DayCounter, error) {
	if err := validate.Title("title", title); err != nil {
		return nil, err
	}
	if err := validate.DateKey("target date", targetDate); err != nil {
		return nil, err
	}
	counter := model.NewDayCounter(strings.TrimSpace(title), targetDate, s.now())
	s.Counters = append(s.Counters, counter)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return counter, nil
}

// UpdateCounter replaces a counter's title and target date.
func (s *State) UpdateCounter(id int64, title, targetDate string) (*model.DayCounter, error) {
	counter := s.FindCounter(id)
	if counter == nil {
		return nil, errors.ErrNotFound
	}
	if err := validate.Title("title", title); err != nil {
		return nil, err
	}
	if err := validate.DateKey("target date", targetDate); err != nil {
		return nil, err
	}
	counter.Title = strings.TrimSpace(title)
	counter.TargetDate = targetDate
	counter.EditedAt = s.now()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return counter, nil
}

// DeleteCounter removes a counter.
func (s *State) DeleteCounter(id int64) error {
	for i, c := range s.Counters {
		if c.ID == id {
			s.Counters = append(append([]*model.DayCounter{}, s.Counters[:i]...), s.Counters[i+1:]...)
			return s.persist()
		}
	}
	return errors.ErrNotFound
}

// ClearCounters removes every counter, all-or-nothing.
func (s *State) ClearCounters() error {
	prev := s.Counters
	s.Counters = []*model.DayCounter{}
	if err := s.persist(); err != nil {
		s.Counters = prev
		return err
	}
	return nil
}

// FindCounter returns the counter with the given id, or nil.
func (s *State) FindCounter(id int64) *model.DayCounter {
	for _, c := range s.Counters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CountersTargeting returns counters whose target date equals the given date.
func (s *State) CountersTargeting(dateKey string) []*model.DayCounter {
	var matched []*model.DayCounter
	for _, c := range s.Counters {
		if c.TargetDate == dateKey {
			matched = append(matched, c)
		}
	}
	return matched
}

// DaysUntil returns the signed days-remaining for a counter: 0 for today,
// positive for days left, negative for days ago.
func (s *State) DaysUntil(counter *model.DayCounter) int {
	days, err := dates.DaysUntil(counter.TargetDate, s.now())
	if err != nil {
		return 0
	}
	return days
}

// SortedCounters returns counters ordered nearest-in-time first: ascending
// by the absolute value of their signed days-remaining.
func (s *State) SortedCounters() []*model.DayCounter {
	sorted := append([]*model.DayCounter{}, s.Counters...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return abs(s.DaysUntil(sorted[i])) < abs(s.DaysUntil(sorted[j]))
	})
	return sorted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
