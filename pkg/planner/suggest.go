package planner

import (
	"errors"
	"fmt"

	"github.com/stefanpenner/nower/pkg/store"
)

// ErrNoGoals is returned by SuggestNextDue when the document has no goals.
var ErrNoGoals = errors.New("no goals")

// Strategy selects which due item SuggestNextDue reports.
type Strategy string

const (
	// StrategyFirstMatch reports the first item in traversal order that is
	// due today or later, regardless of how far away its date is.
	StrategyFirstMatch Strategy = "first-match"
	// StrategyEarliestDate reports the item with the soonest date that is
	// today or later. Ties go to the earlier traversal position.
	StrategyEarliestDate Strategy = "earliest-date"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFirstMatch, StrategyEarliestDate:
		return Strategy(s), nil
	case "":
		return StrategyFirstMatch, nil
	default:
		return "", fmt.Errorf("invalid strategy %q (use %s or %s)", s, StrategyFirstMatch, StrategyEarliestDate)
	}
}

// Suggestion is the result of SuggestNextDue. Entry is only meaningful when Found.
type Suggestion struct {
	Found bool
	Entry Entry
}

func (s Suggestion) String() string {
	if !s.Found {
		return "No upcoming due items found."
	}
	return fmt.Sprintf("Next Due %s: %s%s", s.Entry.Label(), s.Entry.Name, dueSuffix(s.Entry.DueDate))
}

// SuggestNextDue scans every goal, subgoal and task for a due date on or
// after today and picks one according to the planner's strategy.
func (p *Planner) SuggestNextDue(doc *store.Document) (Suggestion, error) {
	if len(doc.Goals) == 0 {
		return Suggestion{}, ErrNoGoals
	}

	today := p.Today()
	var best Suggestion
	for e := range All(doc) {
		if e.DueDate == nil || e.DueDate.Before(today) {
			continue
		}
		if p.Strategy != StrategyEarliestDate {
			return Suggestion{Found: true, Entry: e}, nil
		}
		if !best.Found || e.DueDate.Before(*best.Entry.DueDate) {
			best = Suggestion{Found: true, Entry: e}
		}
	}
	return best, nil
}
