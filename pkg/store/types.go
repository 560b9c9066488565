package store

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on error. Intended for tests and constants.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler (used by JSON and TOML).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalTOML accepts native TOML dates as well as quoted strings.
func (d *Date) UnmarshalTOML(v interface{}) error {
	switch v := v.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("invalid date %v (want YYYY-MM-DD)", v)
	}
}

// MarshalYAML emits the date as a plain YYYY-MM-DD scalar.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts both quoted and bare YYYY-MM-DD scalars.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Task is a leaf action item attached to a goal.
type Task struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	DueDate *Date  `json:"due_date" yaml:"due_date" toml:"due_date,omitempty"`
}

// Goal is a tracked objective. Goals nest through Subgoals.
type Goal struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Subgoals []Goal `json:"subgoals" yaml:"subgoals" toml:"subgoals"`
	Tasks    []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
	DueDate  *Date  `json:"due_date" yaml:"due_date" toml:"due_date,omitempty"`
}

// NewGoal returns a Goal with empty (non-nil) children.
func NewGoal(name string, due *Date) Goal {
	return Goal{
		Name:     name,
		Subgoals: []Goal{},
		Tasks:    []Task{},
		DueDate:  due,
	}
}

// HasDueDate returns true if the goal carries a due date.
func (g *Goal) HasDueDate() bool {
	return g.DueDate != nil
}

// Document is the full persisted state: the ordered top-level goals.
type Document struct {
	Goals []Goal `json:"goals" yaml:"goals" toml:"goals"`
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{Goals: []Goal{}}
}

// normalize replaces nil slices with empty ones so that every format
// round-trips to the same structure.
func (doc *Document) normalize() {
	if doc.Goals == nil {
		doc.Goals = []Goal{}
	}
	normalizeGoals(doc.Goals)
}

func normalizeGoals(goals []Goal) {
	for i := range goals {
		g := &goals[i]
		if g.Subgoals == nil {
			g.Subgoals = []Goal{}
		}
		if g.Tasks == nil {
			g.Tasks = []Task{}
		}
		normalizeGoals(g.Subgoals)
	}
}
