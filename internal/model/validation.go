package model

import (
	"fmt"
	"strings"
)

// FieldError describes a single out-of-domain input value.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in an input rather than
// stopping at the first one.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the collected errors as an error, or nil if there are none.
// ValidationErrors is a slice type, so a non-nil empty slice would otherwise
// compare non-nil as an error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) add(field, format string, args ...any) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationErrors) requirePositive(field string, value float64) {
	if value <= 0 {
		v.add(field, "must be greater than 0, got %g", value)
	}
}

func (v *ValidationErrors) requireNonNegativeCount(field string, value int) {
	if value < 0 {
		v.add(field, "must not be negative, got %d", value)
	}
}
