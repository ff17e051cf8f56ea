package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %s (value: %v): %s", e.Field, e.Value, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: [%s]", strings.Join(msgs, "; "))
}

// requirePositiveInt appends a ValidationError to *errs if value <= 0.
// Shared by Swarm.Validate's population/geometry fields (spec.md §6),
// which all carry the same "must be positive" rule.
func requirePositiveInt(errs *ValidationErrors, field string, value int) {
	if value <= 0 {
		*errs = append(*errs, ValidationError{Field: field, Value: value, Message: "must be positive"})
	}
}

// requirePositive appends a ValidationError to *errs if value <= 0.
func requirePositive(errs *ValidationErrors, field string, value float64) {
	if value <= 0 {
		*errs = append(*errs, ValidationError{Field: field, Value: value, Message: "must be positive"})
	}
}

// requireNonNegative appends a ValidationError to *errs if value < 0.
func requireNonNegative(errs *ValidationErrors, field string, value float64) {
	if value < 0 {
		*errs = append(*errs, ValidationError{Field: field, Value: value, Message: "must be non-negative"})
	}
}

// requireRange appends a ValidationError to *errs if value falls outside
// [lo, hi]. Used by the bounded fields spec.md §4.4 defines a [0,100] or
// [0,1] domain for (battery, efficiency).
func requireRange(errs *ValidationErrors, field string, value, lo, hi float64) {
	if value < lo || value > hi {
		*errs = append(*errs, ValidationError{Field: field, Value: value, Message: fmt.Sprintf("must be between %g and %g", lo, hi)})
	}
}
