// Package validate checks a labeled input value against a constraint set.
// Constraints are combined with logical AND; a constraint that is absent (or
// not applicable to the value's shape) passes.
package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field is one labeled value plus its constraints. Values arrive as the raw
// strings typed into an input; Min/Max only apply when the value parses as a
// number, MinLength/MaxLength compare the raw (untrimmed) length.
type Field struct {
	Label string
	Value string

	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// OK reports whether the field satisfies all of its constraints. It is pure:
// no side effects, no errors; invalidity is communicated only by the result.
func OK(f Field) bool {
	if f.Required && strings.TrimSpace(f.Value) == "" {
		return false
	}

	n := utf8.RuneCountInString(f.Value)
	if f.MinLength != nil && n < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && n > *f.MaxLength {
		return false
	}

	if f.Min != nil || f.Max != nil {
		// Numeric bounds are inclusive and apply only when the value is
		// actually numeric; a non-numeric value is not their concern.
		if v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
			if f.Min != nil && v < *f.Min {
				return false
			}
			if f.Max != nil && v > *f.Max {
				return false
			}
		}
	}

	return true
}
