package utils

import (
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// ValidationError reports required input that is missing or unusable. It is
// surfaced to the user as a destructive notification and never aborts the session.
type ValidationError struct {
	Title       string
	Description string
	Fields      []string
	cause       error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Title + ": " + e.Description
	}
	return e.Title + ": " + e.Description + " (" + strings.Join(e.Fields, ", ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// NewValidationError builds a ValidationError without field details.
func NewValidationError(title, description string) *ValidationError {
	return &ValidationError{Title: title, Description: description}
}

// RequirePresent checks that every named value is non-empty. The returned
// ValidationError lists the offending fields in sorted order.
func RequirePresent(title, description string, values map[string]string) error {
	errs := validation.Errors{}
	for name, value := range values {
		errs[name] = validation.Validate(value, validation.Required)
	}
	err := errs.Filter()
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validation.Errors); ok {
		for name := range verrs {
			fields = append(fields, name)
		}
		sort.Strings(fields)
	}
	return &ValidationError{Title: title, Description: description, Fields: fields, cause: err}
}

// ParseCount converts a form value holding a whole number. Surrounding
// whitespace and leading zeros are accepted.
func ParseCount(title, field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{
			Title:       title,
			Description: "Please enter a whole number for " + field + ".",
			Fields:      []string{field},
			cause:       errors.Wrapf(err, "invalid %s", field),
		}
	}
	return n, nil
}
