package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/output"
)

func TestNewContextInMemory(t *testing.T) {
	t.Setenv("DAYCHECK_DATABASE", ":memory:")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.State)
	assert.NotNil(t, ctx.Views)
	assert.NotNil(t, ctx.Gateway)
	assert.Equal(t, output.FormatCLI, ctx.Formatter.Format)

	// A fresh database starts empty
	assert.Empty(t, ctx.State.Todos)
	assert.Equal(t, 0, ctx.State.AttendedDays())
}

func TestContextPersistsAcrossState(t *testing.T) {
	t.Setenv("DAYCHECK_DATABASE", ":memory:")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.State.AddTodo("persisted")
	require.NoError(t, err)

	// A second state over the same gateway sees the write
	snap, err := ctx.Gateway.Load()
	require.NoError(t, err)
	require.Len(t, snap.TodoData, 1)
	assert.Equal(t, "persisted", snap.TodoData[0].Text)
}

func TestFormatError(t *testing.T) {
	t.Run("validation_with_field", func(t *testing.T) {
		err := apperrors.NewValidationField("title", "cannot be empty", "Provide a title")
		assert.Equal(t, "title: cannot be empty", FormatError(err))
		assert.Equal(t, "Provide a title", Suggestion(err))
	})

	t.Run("conflict", func(t *testing.T) {
		err := apperrors.NewConflict("already attended on 2024-06-05", apperrors.ErrAlreadyAttended)
		assert.Equal(t, "already attended on 2024-06-05", FormatError(err))
		assert.Empty(t, Suggestion(err))
	})

	t.Run("plain", func(t *testing.T) {
		assert.Equal(t, "record not found", FormatError(apperrors.ErrNotFound))
	})
}
