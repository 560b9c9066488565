package planner

import (
	"fmt"
	"strings"

	"github.com/stefanpenner/nower/pkg/store"
)

// DueMarker separates an item name from its optional due date in free-text input.
const DueMarker = " due_date:"

// DateError reports an unparseable due-date suffix.
type DateError struct {
	Input string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("bad due date in %q: %v", e.Input, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// ParseEntry splits "name due_date:YYYY-MM-DD" into its name and date.
// Input that does not split into exactly two parts has no date.
func ParseEntry(input string) (string, *store.Date, error) {
	parts := strings.Split(input, DueMarker)
	name := strings.TrimSpace(parts[0])
	if len(parts) != 2 {
		return name, nil, nil
	}

	d, err := store.ParseDate(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", nil, &DateError{Input: input, Err: err}
	}
	return name, &d, nil
}
