package tui

// Action identifies a menu operation.
type Action int

const (
	ActionNone Action = iota
	ActionAddGoal
	ActionAddTask
	ActionList
	ActionSuggest
	ActionQuit
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key    string
	Label  string
	Action Action
}

// MenuItems returns the menu in display order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Key: "1", Label: "Add a new goal", Action: ActionAddGoal},
		{Key: "2", Label: "Add a new task/action", Action: ActionAddTask},
		{Key: "3", Label: "List all goals", Action: ActionList},
		{Key: "4", Label: "Suggest the next due item", Action: ActionSuggest},
		{Key: "0", Label: "Quit", Action: ActionQuit},
	}
}

// prompt describes one step of collecting input for an add action.
type prompt struct {
	label       string
	placeholder string
}

var namePrompts = map[Action]prompt{
	ActionAddGoal: {label: "Enter a new goal", placeholder: "name (optional: due_date:YYYY-MM-DD)"},
	ActionAddTask: {label: "Enter a new task/action", placeholder: "name (optional: due_date:YYYY-MM-DD)"},
}

var parentPrompts = map[Action]prompt{
	ActionAddGoal: {label: "Parent goal", placeholder: "blank for a top-level goal"},
	ActionAddTask: {label: "Goal for this task", placeholder: "goal name"},
}
