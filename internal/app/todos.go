package app

import (
	"sort"
	"strings"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/validate"
)

// AddTodo creates an active todo.
func (s *State) AddTodo(text string) (*model.Todo, error) {
	text = strings.TrimSpace(text)
	if err := validate.Text("text", text); err != nil {
		return nil, err
	}
	todo := model.NewTodo(text, s.now())
	s.Todos = append(s.Todos, todo)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return todo, nil
}

// EditTodo replaces an active todo's text and stamps the edit time. Blank or
// unchanged text leaves the todo untouched. Completed items are read-only.
func (s *State) EditTodo(id int64, text string) (*model.Todo, error) {
	todo := s.FindTodo(id)
	if todo == nil {
		return nil, errors.ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" || text == todo.Text {
		return todo, nil
	}
	todo.Text = text
	todo.EditedAt = s.now()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return todo, nil
}

// CompleteTodo moves a todo from the active to the completed collection,
// stamping its completion time. The item is never present in both.
func (s *State) CompleteTodo(id int64) (*model.Todo, error) {
	idx := -1
	for i, t := range s.Todos {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errors.ErrNotFound
	}

	prevTodos, prevCompleted := s.Todos, s.Completed
	todo := prevTodos[idx]
	todo.Complete(s.now())
	s.Todos = append(append([]*model.Todo{}, prevTodos[:idx]...), prevTodos[idx+1:]...)
	s.Completed = append(append([]*model.Todo{}, prevCompleted...), todo)

	if err := s.persist(); err != nil {
		todo.Restore()
		s.Todos, s.Completed = prevTodos, prevCompleted
		return nil, err
	}
	return todo, nil
}

// RestoreTodo moves a completed item back to the active collection with its
// completion state cleared.
func (s *State) RestoreTodo(id int64) (*model.Todo, error) {
	idx := -1
	for i, t := range s.Completed {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errors.ErrNotFound
	}

	prevTodos, prevCompleted := s.Todos, s.Completed
	todo := prevCompleted[idx]
	completedAt := todo.CompletedAt
	todo.Restore()
	s.Completed = append(append([]*model.Todo{}, prevCompleted[:idx]...), prevCompleted[idx+1:]...)
	s.Todos = append(append([]*model.Todo{}, prevTodos...), todo)

	if err := s.persist(); err != nil {
		todo.Completed = true
		todo.CompletedAt = completedAt
		s.Todos, s.Completed = prevTodos, prevCompleted
		return nil, err
	}
	return todo, nil
}

// DeleteTodo removes an item from whichever collection holds it.
func (s *State) DeleteTodo(id int64) error {
	for i, t := range s.Todos {
		if t.ID == id {
			s.Todos = append(append([]*model.Todo{}, s.Todos[:i]...), s.Todos[i+1:]...)
			return s.persist()
		}
	}
	for i, t := range s.Completed {
		if t.ID == id {
			s.Completed = append(append([]*model.Todo{}, s.Completed[:i]...), s.Completed[i+1:]...)
			return s.persist()
		}
	}
	return errors.ErrNotFound
}

// ClearTodos removes every active todo, all-or-nothing.
func (s *State) ClearTodos() error {
	prev := s.Todos
	s.Todos = []*model.Todo{}
	if err := s.persist(); err != nil {
		s.Todos = prev
		return err
	}
	return nil
}

// ClearCompleted removes every completed item, all-or-nothing.
func (s *State) ClearCompleted() error {
	prev := s.Completed
	s.Completed = []*model.Todo{}
	if err := s.persist(); err != nil {
		s.Completed = prev
		return err
	}
	return nil
}

// FindTodo returns the active todo with the given id, or nil.
func (s *State) FindTodo(id int64) *model.Todo {
	for _, t := range s.Todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindCompleted returns the completed item with the given id, or nil.
func (s *State) FindCompleted(id int64) *model.Todo {
	for _, t := range s.Completed {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TodosCreatedOn returns active todos created on the given date.
func (s *State) TodosCreatedOn(dateKey string) []*model.Todo {
	var matched []*model.Todo
	for _, t := range s.Todos {
		if dates.Key(t.CreatedAt) == dateKey {
			matched = append(matched, t)
		}
	}
	return matched
}

// TodosCompletedOn returns completed items whose completion fell on the
// given date.
func (s *State) TodosCompletedOn(dateKey string) []*model.Todo {
	var matched []*model.Todo
	for _, t := range s.Completed {
		if !t.CompletedAt.IsZero() && dates.Key(t.CompletedAt) == dateKey {
			matched = append(matched, t)
		}
	}
	return matched
}

// SortedTodos returns active todos newest-first.
func (s *State) SortedTodos() []*model.Todo {
	sorted := append([]*model.Todo{}, s.Todos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// SortedCompleted returns completed items ordered by completion time
// descending.
func (s *State) SortedCompleted() []*model.Todo {
	sorted := append([]*model.Todo{}, s.Completed...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	return sorted
}
