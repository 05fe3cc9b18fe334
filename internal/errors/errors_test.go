package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("with_field", func(t *testing.T) {
		err := NewValidationField("title", "cannot be empty", "Provide a title")
		assert.Equal(t, "title: cannot be empty", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("without_field", func(t *testing.T) {
		err := NewValidation("end date cannot be earlier than start date", "Swap the dates")
		assert.Equal(t, "end date cannot be earlier than start date", err.Error())
	})

	t.Run("survives_wrapping", func(t *testing.T) {
		err := Wrap(NewValidation("bad", "fix"), "creating schedule")
		assert.True(t, IsValidation(err))
		verr, ok := AsValidation(err)
		assert.True(t, ok)
		assert.Equal(t, "fix", verr.Suggestion)
	})
}

func TestConflictError(t *testing.T) {
	err := NewConflict("already attended on 2024-06-05", ErrAlreadyAttended)
	assert.True(t, IsConflict(err))
	assert.ErrorIs(t, err, ErrAlreadyAttended)
	assert.Equal(t, "already attended on 2024-06-05", err.Error())
	assert.False(t, IsValidation(err))
}

func TestCorruptionError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewCorruption("stored snapshot failed to parse", cause)
	assert.True(t, IsCorruption(err))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.ErrorIs(t, err, cause)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(Wrap(ErrNotFound, "deleting todo")))
	assert.False(t, IsNotFound(ErrAlreadyAttended))
	assert.False(t, IsNotFound(nil))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrNotFound, "todo %d", 42)
	assert.Equal(t, "todo 42: record not found", err.Error())
}
