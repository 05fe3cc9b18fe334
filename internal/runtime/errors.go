package runtime

import (
	apperrors "github.com/daycheck/daycheck/internal/errors"
)

// FormatError renders an error for terminal display. Validation failures
// include their field, conflicts render as warnings.
func FormatError(err error) string {
	if verr, ok := apperrors.AsValidation(err); ok {
		if verr.Field != "" {
			return verr.Field + ": " + verr.Message
		}
		return verr.Message
	}
	if cerr, ok := apperrors.AsConflict(err); ok {
		return cerr.Message
	}
	return err.Error()
}

// Suggestion returns the recovery hint attached to a validation error, or an
// empty string.
func Suggestion(err error) string {
	if verr, ok := apperrors.AsValidation(err); ok {
		return verr.Suggestion
	}
	return ""
}
