package model

import (
	"time"

	"github.com/daycheck/daycheck/internal/dates"
)

// Schedule is a titled date range on the calendar. ValidDates is the derived
// expansion of [StartDate, EndDate] honoring SkipWeekends; it is persisted
// alongside the bounds and guarded by a dirty flag so a stale cache can never
// serve a query after the bounds change.
type Schedule struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	SkipWeekends bool      `json:"skipWeekends"`
	CreatedAt    time.Time `json:"createdAt"`
	EditedAt     time.Time `json:"editedAt,omitempty"`
	ValidDates   []string  `json:"validDates,omitempty"`

	dirty bool
}

// DateIndex locates a date within a schedule's valid-dates sequence.
type DateIndex struct {
	Position int  // 1-based position within the sequence
	Total    int  // length of the sequence
	Valid    bool // whether the date is a member
}

// NewSchedule creates a schedule and eagerly computes its valid dates.
func NewSchedule(title, startDate, endDate string, skipWeekends bool, now time.Time) *Schedule {
	s := &Schedule{
		ID:           NewID(now),
		Title:        title,
		StartDate:    startDate,
		EndDate:      endDate,
		SkipWeekends: skipWeekends,
		CreatedAt:    now,
	}
	s.ValidDates = ExpandRange(startDate, endDate, skipWeekends)
	return s
}

// ExpandRange returns the ordered date keys from start to end inclusive,
// stepping one calendar day at a time. When skipWeekends is set, Saturdays
// and Sundays are excluded. Dates are walked at local midnight with calendar
// arithmetic so DST transitions cannot drop or duplicate a day.
func ExpandRange(startKey, endKey string, skipWeekends bool) []string {
	start, err := dates.Parse(startKey)
	if err != nil {
		return nil
	}
	end, err := dates.Parse(endKey)
	if err != nil {
		return nil
	}

	valid := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if skipWeekends && dates.IsWeekend(d) {
			continue
		}
		valid = append(valid, dates.Key(d))
	}
	return valid
}

// SetBounds replaces the date bounds and weekend flag, invalidating the
// cached expansion.
func (s *Schedule) SetBounds(startDate, endDate string, skipWeekends bool) {
	s.StartDate = startDate
	s.EndDate = endDate
	s.SkipWeekends = skipWeekends
	s.Invalidate()
}

// Invalidate marks the cached valid-dates sequence stale. The next query
// recomputes it.
func (s *Schedule) Invalidate() {
	s.dirty = true
}

// Dates returns the valid-dates sequence, recomputing it when the cache is
// missing or stale.
func (s *Schedule) Dates() []string {
	if s.ValidDates == nil || s.dirty {
		s.ValidDates = ExpandRange(s.StartDate, s.EndDate, s.SkipWeekends)
		s.dirty = false
	}
	return s.ValidDates
}

// CoveredOn reports whether the schedule occupies the given date.
func (s *Schedule) CoveredOn(dateKey string) bool {
	for _, d := range s.Dates() {
		if d == dateKey {
			return true
		}
	}
	return false
}

// Index locates dateKey within the valid-dates sequence. Position is 1-based;
// Valid is false for dates the schedule does not cover.
func (s *Schedule) Index(dateKey string) DateIndex {
	valid := s.Dates()
	idx := DateIndex{Total: len(valid)}
	for i, d := range valid {
		if d == dateKey {
			idx.Position = i + 1
			idx.Valid = true
			break
		}
	}
	return idx
}

// MultiDay reports whether the schedule spans more than a single date.
func (s *Schedule) MultiDay() bool {
	return s.StartDate != s.EndDate
}
