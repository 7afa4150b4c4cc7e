package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects field-level problems and converts itself to an
// InvalidArgument Error.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface. Fields are listed in name order.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ToError converts the validation error to our standard error type
func (v *ValidationError) ToError() *Error {
	if len(v.Fields) == 0 {
		return nil
	}

	fields := make(map[string]any, len(v.Fields))
	for k, msgs := range v.Fields {
		fields[k] = strings.Join(msgs, ", ")
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", fields)
}

// ValidationBuilder accumulates field errors; Build returns nil when none were added.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: &ValidationError{Fields: make(map[string][]string)},
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}
