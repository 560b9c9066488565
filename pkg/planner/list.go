package planner

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/stefanpenner/nower/pkg/store"
)

// Kind distinguishes goals from tasks in a traversal.
type Kind int

const (
	KindGoal Kind = iota
	KindTask
)

func (k Kind) String() string {
	if k == KindTask {
		return "task"
	}
	return "goal"
}

// Entry is one row of the pre-order traversal of the goal tree.
type Entry struct {
	Depth   int
	Kind    Kind
	Name    string
	DueDate *store.Date
}

// Label names the entry the way next-due reports do: top-level goals are
// "Goal", nested goals "Subgoal", tasks "Task".
func (e Entry) Label() string {
	switch {
	case e.Kind == KindTask:
		return "Task"
	case e.Depth > 0:
		return "Subgoal"
	default:
		return "Goal"
	}
}

// All lazily walks the tree depth-first: each goal, then its subgoals, then
// its tasks, in insertion order.
func All(doc *store.Document) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walkGoals(doc.Goals, 0, yield)
	}
}

func walkGoals(goals []store.Goal, depth int, yield func(Entry) bool) bool {
	for _, g := range goals {
		if !yield(Entry{Depth: depth, Kind: KindGoal, Name: g.Name, DueDate: g.DueDate}) {
			return false
		}
		if !walkGoals(g.Subgoals, depth+1, yield) {
			return false
		}
		for _, t := range g.Tasks {
			if !yield(Entry{Depth: depth + 1, Kind: KindTask, Name: t.Name, DueDate: t.DueDate}) {
				return false
			}
		}
	}
	return true
}

// ListGoals returns the full traversal.
func ListGoals(doc *store.Document) []Entry {
	return slices.Collect(All(doc))
}

// FormatEntry renders a single traversal row, two spaces per depth level.
func FormatEntry(e Entry) string {
	bullet := "-"
	if e.Kind == KindTask {
		bullet = "*"
	}
	return fmt.Sprintf("%s%s %s%s", strings.Repeat("  ", e.Depth), bullet, e.Name, dueSuffix(e.DueDate))
}

// RenderList writes the "List of Goals:" report.
func RenderList(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w, "List of Goals:"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders the traversal as a nested markdown list.
func Markdown(entries []Entry) string {
	if len(entries) == 0 {
		return "_No goals yet._\n"
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strings.Repeat("  ", e.Depth))
		if e.Kind == KindTask {
			b.WriteString("- [ ] " + e.Name)
		} else {
			b.WriteString("- **" + e.Name + "**")
		}
		if e.DueDate != nil {
			b.WriteString(" _(due " + e.DueDate.String() + ")_")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func dueSuffix(d *store.Date) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf(" (Due Date: %s)", d)
}
