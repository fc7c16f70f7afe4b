// Package numeric holds the argument checks and the rounding rule shared by every formula.
package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Field is a named operand. Checks walk fields in the order they are passed.
type Field struct {
	Name  string
	Value float64
}

// F is shorthand for building a Field at a call site.
func F(name string, value float64) Field {
	return Field{Name: name, Value: value}
}

// ValidationError reports the first operand that failed a check.
type ValidationError struct {
	Field   string  `json:"field"`
	Value   float64 `json:"value"`
	Message string  `json:"error"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MarshalJSON writes a NaN or infinite Value as null.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	var value *float64
	if !math.IsNaN(e.Value) && !math.IsInf(e.Value, 0) {
		v := e.Value
		value = &v
	}
	return json.Marshal(struct {
		Field   string   `json:"field"`
		Value   *float64 `json:"value"`
		Message string   `json:"error"`
	}{e.Field, value, e.Message})
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func notFinite(f Field) *ValidationError {
	return &ValidationError{
		Field:   f.Name,
		Value:   f.Value,
		Message: fmt.Sprintf("Invalid number for %q: %s. Expected a finite number > 0.", f.Name, formatValue(f.Value)),
	}
}

func notPositive(f Field) *ValidationError {
	return &ValidationError{
		Field:   f.Name,
		Value:   f.Value,
		Message: fmt.Sprintf("Invalid value for %q: %s. Expected a number > 0.", f.Name, formatValue(f.Value)),
	}
}

// Positive fails on the first field that is NaN, infinite or not strictly greater than zero.
func Positive(fields ...Field) error {
	for _, f := range fields {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			return notFinite(f)
		}
		if f.Value <= 0 {
			return notPositive(f)
		}
	}
	return nil
}

// NonNegative accepts zero. Used for the cone apex angle, where 0 means no taper.
func NonNegative(f Field) error {
	if math.IsNaN(f.Value) || f.Value < 0 {
		return &ValidationError{
			Field:   f.Name,
			Value:   f.Value,
			Message: fmt.Sprintf("Invalid value for %q: %s. Expected a number >= 0.", f.Name, formatValue(f.Value)),
		}
	}
	return nil
}

// Finite guards a derived value before it is published.
func Finite(f Field) error {
	if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
		return notFinite(f)
	}
	return nil
}
