package app

import (
	"sort"

	"github.com/daycheck/daycheck/internal/model"
)

// Filters holds the per-mode list restrictions. Each of the todo, memo and
// counter modes carries at most one single-date filter; setting a new one
// replaces the old. Schedules and memos additionally support free-text
// search; for memos the date filter takes precedence over the search term.
type Filters struct {
	TodoDate       string
	MemoDate       string
	CounterDate    string
	MemoSearch     string
	ScheduleSearch string
}

// VisibleTodos returns the active-tab todo list narrowed by the todo date
// filter: active todos by creation date, completed items by completion date.
func (s *State) VisibleTodos(f Filters, tab model.TodoTab) []*model.Todo {
	if tab == model.TabCompleted {
		if f.TodoDate == "" {
			return s.SortedCompleted()
		}
		return sortedCompletedOf(s.TodosCompletedOn(f.TodoDate))
	}
	if f.TodoDate == "" {
		return s.SortedTodos()
	}
	return sortedTodosOf(s.TodosCreatedOn(f.TodoDate))
}

// VisibleMemos returns the memo list narrowed by the date filter, or failing
// that by the search term.
func (s *State) VisibleMemos(f Filters) []*model.Memo {
	if f.MemoDate != "" {
		return sortedMemosOf(s.MemosCreatedOn(f.MemoDate))
	}
	if f.MemoSearch != "" {
		return s.SearchMemos(f.MemoSearch)
	}
	return s.SortedMemos()
}

// VisibleCounters returns the counter list narrowed by the target-date
// filter, ordered nearest-in-time first.
func (s *State) VisibleCounters(f Filters) []*model.DayCounter {
	if f.CounterDate == "" {
		return s.SortedCounters()
	}
	var matched []*model.DayCounter
	for _, c := range s.SortedCounters() {
		if c.TargetDate == f.CounterDate {
			matched = append(matched, c)
		}
	}
	return matched
}

// VisibleSchedules returns the schedule list narrowed by the title search.
func (s *State) VisibleSchedules(f Filters) []*model.Schedule {
	return s.SearchSchedules(f.ScheduleSearch)
}

func sortedTodosOf(todos []*model.Todo) []*model.Todo {
	sorted := append([]*model.Todo{}, todos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func sortedMemosOf(memos []*model.Memo) []*model.Memo {
	sorted := append([]*model.Memo{}, memos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func sortedCompletedOf(todos []*model.Todo) []*model.Todo {
	sorted := append([]*model.Todo{}, todos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	return sorted
}
