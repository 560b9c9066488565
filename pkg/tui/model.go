package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/nower/pkg/planner"
	"github.com/stefanpenner/nower/pkg/store"
)

// ErrInterrupted is reported by Model.Err when the user aborted with ctrl+c.
var ErrInterrupted = errors.New("interrupted by user")

// DocumentChangedMsg is sent when the file watcher detects a change to the store file.
type DocumentChangedMsg struct{}

// Model is the Bubble Tea model for the interactive planner menu.
type Model struct {
	store   *store.Store
	planner *planner.Planner
	doc     *store.Document
	keys    KeyMap
	width   int
	height  int

	// Prompt state (for adding goals and tasks); ActionNone while on the menu
	action      Action
	step        int // 0 = name, 1 = parent/goal
	pendingName string
	pendingDue  *store.Date
	textInput   textinput.Model

	// Result of the last operation
	output           string
	outputIsMarkdown bool
	outputStyle      lipgloss.Style

	// Status message
	statusMsg     string
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int

	interrupted bool
	err         error
}

// NewModel creates a menu model over an already loaded document.
func NewModel(s *store.Store, p *planner.Planner, doc *store.Document) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.TextStyle = InputStyle

	return Model{
		store:       s,
		planner:     p,
		doc:         doc,
		keys:        DefaultKeyMap(),
		textInput:   ti,
		outputStyle: lipgloss.NewStyle(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Doc returns the document as currently held by the menu.
func (m Model) Doc() *store.Document {
	return m.doc
}

// Err returns ErrInterrupted after ctrl+c, or the fatal error that ended the menu.
func (m Model) Err() error {
	if m.interrupted {
		return ErrInterrupted
	}
	return m.err
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.getGlamourRenderer(msg.Width - 4)
		return m, nil

	case DocumentChangedMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Update text input if prompting
	if m.action != ActionNone {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.interrupted = true
		return m, tea.Quit
	}

	// Prompt handling
	if m.action != ActionNone {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.resetPrompt()
			m.setStatus("Cancelled")
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			cmd := m.submitPrompt()
			return m, cmd
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	}

	// Menu
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.AddGoal):
		m.startPrompt(ActionAddGoal)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.AddTask):
		m.startPrompt(ActionAddTask)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.List):
		m.showList()

	case key.Matches(msg, m.keys.Suggest):
		m.showSuggestion()

	default:
		if msg.Type == tea.KeyRunes {
			m.setStatus("Invalid choice. Please try again.")
		}
	}

	return m, nil
}

// startPrompt begins collecting the name for an add action.
func (m *Model) startPrompt(action Action) {
	m.action = action
	m.step = 0
	m.pendingName = ""
	m.pendingDue = nil
	m.textInput.Reset()
	m.textInput.Placeholder = namePrompts[action].placeholder
	m.textInput.Focus()
}

func (m *Model) resetPrompt() {
	m.action = ActionNone
	m.step = 0
	m.pendingName = ""
	m.pendingDue = nil
	m.textInput.Reset()
	m.textInput.Blur()
}

// promptLabel returns the label of the current prompt step.
func (m Model) promptLabel() string {
	if m.step == 0 {
		return namePrompts[m.action].label
	}
	return parentPrompts[m.action].label
}

// submitPrompt consumes the text input for the current step. A bad due date
// or a failed save ends the program.
func (m *Model) submitPrompt() tea.Cmd {
	value := strings.TrimSpace(m.textInput.Value())

	if m.step == 0 {
		name, due, err := planner.ParseEntry(value)
		if err != nil {
			m.err = err
			return tea.Quit
		}
		if name == "" {
			m.setStatus("Name cannot be empty")
			return nil
		}
		m.pendingName = name
		m.pendingDue = due
		m.step = 1
		m.textInput.Reset()
		m.textInput.Placeholder = parentPrompts[m.action].placeholder
		return textinput.Blink
	}

	var (
		kind string
		err  error
	)
	switch m.action {
	case ActionAddGoal:
		kind = "Goal"
		_, err = m.planner.AddGoal(m.doc, m.pendingName, value, m.pendingDue)
	case ActionAddTask:
		kind = "Task"
		_, err = m.planner.AddTask(m.doc, m.pendingName, value, m.pendingDue)
	}

	name := m.pendingName
	m.resetPrompt()

	if err != nil {
		m.setOutput("Error: "+err.Error(), ErrorStyle)
		return nil
	}
	if err := m.store.Save(m.doc); err != nil {
		m.err = fmt.Errorf("saving: %w", err)
		return tea.Quit
	}
	m.setOutput(fmt.Sprintf("%s %q added successfully!", kind, name), SuccessStyle)
	return nil
}

func (m *Model) showList() {
	entries := planner.ListGoals(m.doc)
	m.output = "# List of Goals\n\n" + planner.Markdown(entries)
	m.outputIsMarkdown = true
	m.outputStyle = lipgloss.NewStyle()
}

func (m *Model) showSuggestion() {
	s, err := m.planner.SuggestNextDue(m.doc)
	switch {
	case errors.Is(err, planner.ErrNoGoals):
		m.setOutput("Please add goals first.", StatusStyle)
	case err != nil:
		m.setOutput("Error: "+err.Error(), ErrorStyle)
	case s.Found:
		m.setOutput(s.String(), DueStyle)
	default:
		m.setOutput(s.String(), StatusStyle)
	}
}

func (m *Model) setOutput(text string, style lipgloss.Style) {
	m.output = text
	m.outputIsMarkdown = false
	m.outputStyle = style
}

// reload re-reads the store after an external change. A file that no longer
// parses keeps the in-memory document.
func (m *Model) reload() {
	doc, err := m.store.Load()
	if err != nil {
		m.setStatus("Reload failed: " + err.Error())
		return
	}
	m.doc = doc
	m.setStatus("Reloaded " + m.store.Path)
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
