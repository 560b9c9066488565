package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/nower/pkg/planner"
)

const minWidth = 40

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	if w < minWidth {
		w = minWidth
	}

	var b strings.Builder

	// Header
	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", w))
	b.WriteString("\n")

	// Menu
	b.WriteString(m.renderMenu())
	b.WriteString(strings.Repeat("=", w))
	b.WriteString("\n")

	// Prompt or choice line
	if m.action != ActionNone {
		b.WriteString(InputPromptStyle.Render(m.promptLabel() + ": "))
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
		if m.step == 1 {
			b.WriteString(FooterStyle.Render(fmt.Sprintf("  %s%s", m.pendingName, dueNote(m))))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(InputPromptStyle.Render("Enter your choice (0-4)"))
		b.WriteString("\n")
	}

	// Output of the last operation
	if out := m.renderOutput(w); out != "" {
		b.WriteString("\n")
		b.WriteString(out)
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("Goal and Action Planner")
	stats := HeaderCountStyle.Render(countSummary(m))

	// Status message
	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + StatusStyle.Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return title + status + strings.Repeat(" ", gap) + stats
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for _, item := range MenuItems() {
		label := MenuLabelStyle
		if item.Action == ActionQuit {
			label = MenuQuitStyle
		}
		b.WriteString(MenuKeyStyle.Render(item.Key + "."))
		b.WriteString(label.Render(item.Label))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOutput(width int) string {
	if m.output == "" {
		return ""
	}

	if !m.outputIsMarkdown {
		return m.outputStyle.Render(m.output)
	}

	rendered := m.output
	if m.glamourRenderer != nil {
		if r, err := m.glamourRenderer.Render(m.output); err == nil {
			rendered = r
		}
	}
	rendered = strings.TrimRight(rendered, "\n ")
	return OutputPanelStyle.Width(width - 2).Render(rendered)
}

func (m Model) renderFooter() string {
	if m.action != ActionNone {
		return FooterStyle.Render(m.keys.PromptHelp())
	}
	return FooterStyle.Render(m.keys.ShortHelp())
}

func dueNote(m Model) string {
	if m.pendingDue == nil {
		return ""
	}
	return " (Due Date: " + m.pendingDue.String() + ")"
}

// countSummary reports how many goals and tasks the document holds.
func countSummary(m Model) string {
	if m.doc == nil {
		return ""
	}
	goals, tasks := 0, 0
	for e := range planner.All(m.doc) {
		if e.Kind == planner.KindTask {
			tasks++
		} else {
			goals++
		}
	}
	return fmt.Sprintf("%d goals, %d tasks", goals, tasks)
}
