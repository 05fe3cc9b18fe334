// Package validate provides input validation helpers for Daycheck.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/errors"
)

const (
	// MaxTitleLength is the maximum length for a title.
	MaxTitleLength = 128
	// MaxTextLength is the maximum length for todo text and memo content.
	MaxTextLength = 4096
)

// NonEmpty validates that a value is not blank.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationField(field, "cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// Title validates a title string.
func Title(field, value string) error {
	if err := NonEmpty(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) > MaxTitleLength {
		return errors.NewValidationField(field, "too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// Text validates free-form text such as todo text or memo content.
func Text(field, value string) error {
	if err := NonEmpty(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) > MaxTextLength {
		return errors.NewValidationField(field, "too long",
			"Text must be 4096 characters or fewer")
	}
	return nil
}

// DateKey validates a canonical YYYY-MM-DD date key.
func DateKey(field, value string) error {
	if value == "" {
		return errors.NewValidationField(field, "is required",
			"Provide a date in YYYY-MM-DD form")
	}
	if !dates.IsKey(value) {
		return errors.NewValidationField(field, "is not a valid date",
			"Use YYYY-MM-DD, e.g. 2024-06-03")
	}
	return nil
}

// DateRange validates that both bounds are well-formed date keys and that the
// end does not precede the start. Date keys compare correctly as strings.
func DateRange(start, end string) error {
	if err := DateKey("start date", start); err != nil {
		return err
	}
	if err := DateKey("end date", end); err != nil {
		return err
	}
	if start > end {
		return errors.NewValidation("end date cannot be earlier than start date",
			"Swap the dates or pick a later end date")
	}
	return nil
}
