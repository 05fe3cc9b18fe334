package app

import "github.com/daycheck/daycheck/internal/model"

// Stat is an aggregate count with its display label.
type Stat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ModeStat computes the aggregate for a mode scoped to the given year using
// each entity's defining date. Attendance is the exception: it is a lifetime
// total and counts marks across all years.
func (s *State) ModeStat(mode model.Mode, year int, tab model.TodoTab) Stat {
	switch mode {
	case model.ModeAttendance:
		return Stat{Label: "Total Attendance Days", Count: s.AttendedDays()}

	case model.ModeSchedule:
		count := 0
		for _, sched := range s.Schedules {
			if yearOfKey(sched.StartDate) == year {
				count++
			}
		}
		return Stat{Label: "Total Schedules", Count: count}

	case model.ModeTodo:
		if tab == model.TabCompleted {
			count := 0
			for _, t := range s.Completed {
				if !t.CompletedAt.IsZero() && t.CompletedAt.Year() == year {
					count++
				}
			}
			return Stat{Label: "Completed Todos", Count: count}
		}
		count := 0
		for _, t := range s.Todos {
			if t.CreatedAt.Year() == year {
				count++
			}
		}
		return Stat{Label: "Total Todos", Count: count}

	case model.ModeMemo:
		count := 0
		for _, m := range s.Memos {
			if m.CreatedAt.Year() == year {
				count++
			}
		}
		return Stat{Label: "Total Memos", Count: count}

	case model.ModeCounter:
		count := 0
		for _, c := range s.Counters {
			if c.CreatedAt.Year() == year {
				count++
			}
		}
		return Stat{Label: "Total Counters", Count: count}
	}
	return Stat{Label: "Total Attendance Days", Count: s.AttendedDays()}
}

func yearOfKey(dateKey string) int {
	if len(dateKey) < 4 {
		return 0
	}
	year := 0
	for _, r := range dateKey[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
