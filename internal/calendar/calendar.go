// Package calendar derives per-day cell decorations, tooltip content and
// month grid layouts from the record collections. The same derivation feeds
// both the CLI calendar command and the interactive dashboard.
package calendar

import (
	"fmt"
	"time"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// CellStyle classifies a calendar day's decoration for the selected mode.
type CellStyle int

const (
	StyleNone CellStyle = iota
	StyleAttended
	StyleScheduleSingle   // one schedule covers the day
	StyleScheduleDouble   // two schedules
	StyleScheduleMultiple // three or more
	StyleTodoCreated
	StyleTodoCompleted
	StyleMemoCreated
	StyleCounterTarget
)

// View reads the record collections through the lens of one mode. The todo
// tab decides whether todo cells reflect creation or completion dates.
type View struct {
	State *app.State
	Mode  model.Mode
	Tab   model.TodoTab
}

// StyleFor classifies a day's decoration under the view's mode.
func (v *View) StyleFor(dateKey string) CellStyle {
	switch v.Mode {
	case model.ModeAttendance:
		if v.State.IsAttended(dateKey) {
			return StyleAttended
		}
	case model.ModeSchedule:
		switch n := len(v.State.SchedulesOn(dateKey)); {
		case n >= 3:
			return StyleScheduleMultiple
		case n == 2:
			return StyleScheduleDouble
		case n == 1:
			return StyleScheduleSingle
		}
	case model.ModeTodo:
		if v.Tab == model.TabCompleted {
			if len(v.State.TodosCompletedOn(dateKey)) > 0 {
				return StyleTodoCompleted
			}
			return StyleNone
		}
		if len(v.State.TodosCreatedOn(dateKey)) > 0 {
			return StyleTodoCreated
		}
	case model.ModeMemo:
		if len(v.State.MemosCreatedOn(dateKey)) > 0 {
			return StyleMemoCreated
		}
	case model.ModeCounter:
		if len(v.State.CountersTargeting(dateKey)) > 0 {
			return StyleCounterTarget
		}
	}
	return StyleNone
}

// TooltipFor builds the hover lines for a day under the view's mode. Days
// with nothing to show return nil.
func (v *View) TooltipFor(dateKey string) []string {
	switch v.Mode {
	case model.ModeAttendance:
		logs := v.State.LogsForDate(dateKey)
		if len(logs) == 0 {
			return nil
		}
		lines := []string{dates.Display(dateKey)}
		for _, l := range logs {
			line := "Checked in " + output.FormatTimeOnly(l.CheckedInAt)
			if l.IsClockedOut() {
				line += ", out " + output.FormatTimeOnly(l.ClockedOutAt)
			}
			if l.Memo != "" {
				line += ": " + l.Memo
			}
			lines = append(lines, line)
		}
		return lines

	case model.ModeSchedule:
		schedules := v.State.SchedulesOn(dateKey)
		if len(schedules) == 0 {
			return nil
		}
		lines := make([]string, 0, len(schedules))
		for _, s := range schedules {
			lines = append(lines, output.ScheduleLabel(s, dateKey))
		}
		return lines

	case model.ModeTodo:
		var todos []*model.Todo
		if v.Tab == model.TabCompleted {
			todos = v.State.TodosCompletedOn(dateKey)
		} else {
			todos = v.State.TodosCreatedOn(dateKey)
		}
		if len(todos) == 0 {
			return nil
		}
		lines := make([]string, 0, len(todos))
		for _, t := range todos {
			lines = append(lines, t.Text)
		}
		return lines

	case model.ModeMemo:
		memos := v.State.MemosCreatedOn(dateKey)
		if len(memos) == 0 {
			return nil
		}
		lines := make([]string, 0, len(memos))
		for _, m := range memos {
			lines = append(lines, m.Title)
		}
		return lines

	case model.ModeCounter:
		counters := v.State.CountersTargeting(dateKey)
		if len(counters) == 0 {
			return nil
		}
		lines := make([]string, 0, len(counters))
		for _, c := range counters {
			lines = append(lines, fmt.Sprintf("%s (%s)",
				c.Title, output.DaysText(v.State.DaysUntil(c))))
		}
		return lines
	}
	return nil
}

// Week is one Sunday-start calendar row. Cells outside the month are empty
// strings; the rest are date keys.
type Week [7]string

// MonthGrid lays out a month as Sunday-start weeks.
func MonthGrid(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	var weeks []Week
	week := Week{}
	col := int(first.Weekday())
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		week[col] = dates.Key(d)
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = Week{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthLabel returns the header for a month grid, e.g. "June 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// YearGrids lays out all twelve months of a year in calendar order.
func YearGrids(year int) [][]Week {
	grids := make([][]Week, 12)
	for m := time.January; m <= time.December; m++ {
		grids[m-1] = MonthGrid(year, m)
	}
	return grids
}
