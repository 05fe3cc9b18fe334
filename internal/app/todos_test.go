package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daycheck/daycheck/internal/errors"
)

// =============================================================================
// Add / Edit Tests
// =============================================================================

func TestAddTodo(t *testing.T) {
	s := newTestState(t)

	todo, err := s.AddTodo("  Write report  ")
	require.NoError(t, err)
	assert.Equal(t, "Write report", todo.Text)
	assert.False(t, todo.Completed)
	assert.Len(t, s.Todos, 1)
}

func TestAddTodoRejectsBlank(t *testing.T) {
	s := newTestState(t)
	_, err := s.AddTodo("   ")
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, s.Todos)
}

func TestEditTodo(t *testing.T) {
	s := newTestState(t)
	todo, err := s.AddTodo("Write report")
	require.NoError(t, err)

	t.Run("changed_text", func(t *testing.T) {
		edited, err := s.EditTodo(todo.ID, "Write trip report")
		require.NoError(t, err)
		assert.Equal(t, "Write trip report", edited.Text)
		assert.False(t, edited.EditedAt.IsZero())
	})

	t.Run("blank_is_noop", func(t *testing.T) {
		before := todo.Text
		edited, err := s.EditTodo(todo.ID, "  ")
		require.NoError(t, err)
		assert.Equal(t, before, edited.Text)
	})

	t.Run("unchanged_is_noop", func(t *testing.T) {
		stamp := todo.EditedAt
		_, err := s.EditTodo(todo.ID, todo.Text)
		require.NoError(t, err)
		assert.Equal(t, stamp, todo.EditedAt)
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := s.EditTodo(999, "anything")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

// =============================================================================
// Complete / Restore Tests
// =============================================================================

func TestCompleteTodo(t *testing.T) {
	s := newTestState(t)
	todo, err := s.AddTodo("Write report")
	require.NoError(t, err)

	done, err := s.CompleteTodo(todo.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.False(t, done.CompletedAt.IsZero())

	// The item lives in exactly one collection
	assert.Empty(t, s.Todos)
	assert.Len(t, s.Completed, 1)
	assert.Nil(t, s.FindTodo(todo.ID))
	assert.NotNil(t, s.FindCompleted(todo.ID))
}

func TestRestoreTodo(t *testing.T) {
	s := newTestState(t)
	todo, err := s.AddTodo("Write report")
	require.NoError(t, err)
	_, err = s.CompleteTodo(todo.ID)
	require.NoError(t, err)

	restored, err := s.RestoreTodo(todo.ID)
	require.NoError(t, err)
	assert.False(t, restored.Completed)
	assert.True(t, restored.CompletedAt.IsZero())
	assert.Len(t, s.Todos, 1)
	assert.Empty(t, s.Completed)
}

func TestCompleteUnknownTodo(t *testing.T) {
	s := newTestState(t)
	_, err := s.CompleteTodo(12345)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

// =============================================================================
// Delete / Clear Tests
// =============================================================================

func TestDeleteTodoFromEitherCollection(t *testing.T) {
	s := newTestState(t)
	active, err := s.AddTodo("active")
	require.NoError(t, err)
	completed, err := s.AddTodo("completed")
	require.NoError(t, err)
	_, err = s.CompleteTodo(completed.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(active.ID))
	require.NoError(t, s.DeleteTodo(completed.ID))
	assert.Empty(t, s.Todos)
	assert.Empty(t, s.Completed)

	assert.ErrorIs(t, s.DeleteTodo(active.ID), errors.ErrNotFound)
}

func TestClearTodosLeavesCompleted(t *testing.T) {
	s := newTestState(t)
	_, err := s.AddTodo("active")
	require.NoError(t, err)
	done, err := s.AddTodo("done")
	require.NoError(t, err)
	_, err = s.CompleteTodo(done.ID)
	require.NoError(t, err)

	require.NoError(t, s.ClearTodos())
	assert.Empty(t, s.Todos)
	assert.Len(t, s.Completed, 1)

	require.NoError(t, s.ClearCompleted())
	assert.Empty(t, s.Completed)
}

// =============================================================================
// Query Tests
// =============================================================================

func TestTodosCreatedAndCompletedOn(t *testing.T) {
	s := newTestState(t)
	todo, err := s.AddTodo("Write report")
	require.NoError(t, err)

	created := s.TodosCreatedOn("2024-06-05")
	assert.Len(t, created, 1)
	assert.Empty(t, s.TodosCreatedOn("2024-06-06"))

	_, err = s.CompleteTodo(todo.ID)
	require.NoError(t, err)
	assert.Len(t, s.TodosCompletedOn("2024-06-05"), 1)
	assert.Empty(t, s.TodosCreatedOn("2024-06-05"))
}

func TestSortedTodosNewestFirst(t *testing.T) {
	s := newTestState(t)
	first, err := s.AddTodo("first")
	require.NoError(t, err)
	second, err := s.AddTodo("second")
	require.NoError(t, err)

	sorted := s.SortedTodos()
	require.Len(t, sorted, 2)
	assert.Equal(t, second.ID, sorted[0].ID)
	assert.Equal(t, first.ID, sorted[1].ID)
}
