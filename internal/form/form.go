// Package form turns raw new-project input into a validated value the store
// can accept. Parsing either yields a complete Input or a ValidationError
// naming the offending fields; there is no half-parsed middle state.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"projectboard/internal/validate"
)

const (
	descriptionMinLength = 5
	peopleMin            = 1
	peopleMax            = 5
)

// Input carries the three validated fields of a new project.
type Input struct {
	Title       string
	Description string
	People      int
}

// ValidationError lists the fields that failed validation, in form order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// Parse validates the raw field values and returns the parsed Input. On
// failure it returns a *ValidationError; callers keep their raw field state
// (a rejected submission never clears the form).
func Parse(title, description, people string) (Input, error) {
	var bad []string

	if !validate.OK(validate.Field{Label: "title", Value: title, Required: true}) {
		bad = append(bad, "title")
	}

	minDesc := descriptionMinLength
	if !validate.OK(validate.Field{Label: "description", Value: description, Required: true, MinLength: &minDesc}) {
		bad = append(bad, "description")
	}

	min := float64(peopleMin)
	max := float64(peopleMax)
	peopleOK := validate.OK(validate.Field{Label: "people", Value: people, Required: true, Min: &min, Max: &max})
	// The bounds check above only fires for numeric values; the field itself
	// must also be a whole number.
	n, err := strconv.Atoi(strings.TrimSpace(people))
	if !peopleOK || err != nil {
		bad = append(bad, "people")
	}

	if len(bad) > 0 {
		return Input{}, &ValidationError{Fields: bad}
	}

	return Input{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		People:      n,
	}, nil
}
