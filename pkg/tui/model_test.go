package tui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stefanpenner/nower/pkg/planner"
	"github.com/stefanpenner/nower/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "goals_actions.json"), nil)
	require.NoError(t, err)
	doc, err := s.Load()
	require.NoError(t, err)

	p := planner.New()
	p.Clock = func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.Local) }
	return NewModel(s, p, doc), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// send feeds messages through Update and returns the final model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAddGoalFromMenu(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = send(t, m, runes("1"))
	assert.Equal(t, ActionAddGoal, m.action)

	m, _ = send(t, m, runes("Learn guitar due_date:2030-01-01"), enter)
	assert.Equal(t, 1, m.step)
	assert.Equal(t, "Learn guitar", m.pendingName)

	m, cmd := send(t, m, enter)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, ActionNone, m.action)
	assert.Equal(t, `Goal "Learn guitar" added successfully!`, m.output)

	// Persisted immediately
	saved, err := s.Load()
	require.NoError(t, err)
	require.Len(t, saved.Goals, 1)
	assert.Equal(t, store.MustParseDate("2030-01-01"), *saved.Goals[0].DueDate)
}

func TestAddSubgoalAndTaskFromMenu(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = send(t, m, runes("1"), runes("Learn guitar"), enter, enter)
	m, _ = send(t, m, runes("1"), runes("Practice scales"), enter, runes("Learn guitar"), enter)
	m, _ = send(t, m, runes("2"), runes("Buy strings due_date:2026-11-01"), enter, runes("Learn guitar"), enter)
	assert.Equal(t, `Task "Buy strings" added successfully!`, m.output)

	saved, err := s.Load()
	require.NoError(t, err)
	require.Len(t, saved.Goals, 1)
	require.Len(t, saved.Goals[0].Subgoals, 1)
	require.Len(t, saved.Goals[0].Tasks, 1)
	assert.Equal(t, "Buy strings", saved.Goals[0].Tasks[0].Name)
}

func TestAddTaskWithoutGoalFromMenu(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = send(t, m, runes("1"), runes("Learn guitar"), enter, enter)
	m, cmd := send(t, m, runes("2"), runes("Buy strings"), enter, enter)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "Error: "+planner.ErrGoalRequired.Error(), m.output)

	saved, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, saved.Goals[0].Tasks)
}

func TestAddGoalUnknownParentFromMenu(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("1"), runes("X"), enter, runes("NoSuchGoal"), enter)
	assert.Equal(t, `Error: goal "NoSuchGoal" not found`, m.output)
	assert.Empty(t, m.Doc().Goals)
}

func TestBadDueDateEndsMenu(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := send(t, m, runes("1"), runes("Learn guitar due_date:someday"), enter)
	assert.True(t, isQuit(cmd))
	var derr *planner.DateError
	assert.True(t, errors.As(m.Err(), &derr))
}

func TestEmptyNameStaysInPrompt(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("1"), enter)
	assert.Equal(t, ActionAddGoal, m.action)
	assert.Equal(t, 0, m.step)
	assert.Equal(t, "Name cannot be empty", m.statusMsg)
}

func TestCancelPrompt(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("2"), runes("half typed"), esc)
	assert.Equal(t, ActionNone, m.action)
	assert.Equal(t, "", m.textInput.Value())
	assert.Equal(t, "Cancelled", m.statusMsg)
}

func TestPromptAcceptsMenuKeysAsText(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("1"), runes("q0"))
	assert.Equal(t, ActionAddGoal, m.action)
	assert.Equal(t, "q0", m.textInput.Value())
}

func TestListFromMenu(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("1"), runes("Learn guitar due_date:2030-01-01"), enter, enter)
	m, _ = send(t, m, runes("3"))
	assert.True(t, m.outputIsMarkdown)
	assert.Contains(t, m.output, "# List of Goals")
	assert.Contains(t, m.output, "- **Learn guitar** _(due 2030-01-01)_")
}

func TestSuggestFromMenu(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = send(t, m, runes("4"))
	assert.Equal(t, "Please add goals first.", m.output)

	m, _ = send(t, m, runes("1"), runes("Someday"), enter, enter, runes("4"))
	assert.Equal(t, "No upcoming due items found.", m.output)

	m, _ = send(t, m, runes("1"), runes("Retire due_date:2099-01-01"), enter, enter, runes("4"))
	assert.Equal(t, "Next Due Goal: Retire (Due Date: 2099-01-01)", m.output)
}

func TestInvalidChoice(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := send(t, m, runes("7"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid choice. Please try again.", m.statusMsg)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"0", "q"} {
		m, _ := setupTestModel(t)
		m, cmd := send(t, m, runes(k))
		assert.True(t, isQuit(cmd))
		assert.NoError(t, m.Err())
	}
}

func TestInterrupt(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := send(t, m, runes("1"), runes("Learn"), ctrlC)
	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, m.Err(), ErrInterrupted)
	assert.Empty(t, m.Doc().Goals)
}

func TestReloadOnDocumentChange(t *testing.T) {
	m, s := setupTestModel(t)

	doc := store.NewDocument()
	doc.Goals = append(doc.Goals, store.NewGoal("Written elsewhere", nil))
	require.NoError(t, s.Save(doc))

	m, _ = send(t, m, DocumentChangedMsg{})
	require.Len(t, m.Doc().Goals, 1)
	assert.Equal(t, "Written elsewhere", m.Doc().Goals[0].Name)
}

func TestViewShowsMenu(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	for _, item := range MenuItems() {
		assert.Contains(t, view, item.Label)
	}
	assert.Contains(t, view, "Enter your choice (0-4)")
	assert.Contains(t, view, "0 goals, 0 tasks")
}
