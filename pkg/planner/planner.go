package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/stefanpenner/nower/pkg/store"
)

// ErrGoalRequired is returned when a task is added without a goal to attach it to.
var ErrGoalRequired = errors.New("a task must be attached to a goal")

// NotFoundError is returned when a parent or goal name matches no goal.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("goal %q not found", e.Name)
}

// Lookup selects which goals are eligible when resolving a goal by name.
type Lookup string

const (
	// LookupTopLevel only considers top-level goals.
	LookupTopLevel Lookup = "top-level"
	// LookupTree searches the whole tree depth-first, first match wins.
	LookupTree Lookup = "tree"
)

// ParseLookup validates a lookup scope name.
func ParseLookup(s string) (Lookup, error) {
	switch Lookup(s) {
	case LookupTopLevel, LookupTree:
		return Lookup(s), nil
	case "":
		return LookupTopLevel, nil
	default:
		return "", fmt.Errorf("invalid lookup %q (use %s or %s)", s, LookupTopLevel, LookupTree)
	}
}

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// Planner carries the settings shared by the operations.
type Planner struct {
	Lookup   Lookup
	Strategy Strategy
	Clock    Clock
}

// New returns a Planner with top-level lookup,
// first-match suggestions and the wall clock.
func New() *Planner {
	return &Planner{
		Lookup:   LookupTopLevel,
		Strategy: StrategyFirstMatch,
		Clock:    time.Now,
	}
}

// Today returns the current local calendar date according to the planner's clock.
func (p *Planner) Today() store.Date {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return store.DateOf(clock())
}

// AddGoal creates a goal. With an empty parent it is appended to the top
// level; otherwise it is appended to the first goal named parent. An
// unresolved parent leaves doc untouched and returns a *NotFoundError.
func (p *Planner) AddGoal(doc *store.Document, name, parent string, due *store.Date) (store.Goal, error) {
	goal := store.NewGoal(name, due)

	if parent == "" {
		doc.Goals = append(doc.Goals, goal)
		return goal, nil
	}

	target := p.findGoal(doc.Goals, parent)
	if target == nil {
		return store.Goal{}, &NotFoundError{Name: parent}
	}
	target.Subgoals = append(target.Subgoals, goal)
	return goal, nil
}

// AddTask attaches a task to the first goal named goalName.
func (p *Planner) AddTask(doc *store.Document, name, goalName string, due *store.Date) (store.Task, error) {
	if goalName == "" {
		return store.Task{}, ErrGoalRequired
	}

	target := p.findGoal(doc.Goals, goalName)
	if target == nil {
		return store.Task{}, &NotFoundError{Name: goalName}
	}

	task := store.Task{Name: name, DueDate: due}
	target.Tasks = append(target.Tasks, task)
	return task, nil
}

// findGoal returns a pointer into goals so callers can append in place.
func (p *Planner) findGoal(goals []store.Goal, name string) *store.Goal {
	for i := range goals {
		if goals[i].Name == name {
			return &goals[i]
		}
		if p.Lookup == LookupTree {
			if found := p.findGoal(goals[i].Subgoals, name); found != nil {
				return found
			}
		}
	}
	return nil
}
