package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	prompt        = "> "
	cursor        = "█"
	maxItemWidth  = 32
	minInputWidth = 16
	ellipsis      = "…"
)

// View renders the UI based on the model state
func (m Model) View() string {
	if m.ctrl.Done() {
		return ""
	}

	snap := m.ctrl.Snapshot()

	var b strings.Builder
	line := m.renderInput(snap.Text)
	b.WriteString(line)

	used := lipgloss.Width(line)
	b.WriteString(m.renderSuggestions(snap.Suggestions, snap.Selected, used))

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderInput draws the prompt and buffer. When the buffer is wider than
// half the terminal only its tail is shown.
func (m Model) renderInput(text string) string {
	if m.width > 0 {
		avail := max(m.width/2, minInputWidth) - len(prompt) - 1
		if runewidth.StringWidth(text) > avail && avail > 1 {
			// Input is ASCII-only, so byte offsets are columns.
			text = ellipsis + text[len(text)-(avail-1):]
		}
	}

	return m.styles.Prompt.Render(prompt) +
		m.styles.Input.Render(text) +
		m.styles.Cursor.Render(cursor)
}

// renderSuggestions draws the suggestions in one row after the input,
// dropping whatever does not fit in the terminal width.
func (m Model) renderSuggestions(names []string, selected, used int) string {
	if len(names) == 0 {
		return ""
	}

	sep := m.styles.Separator.Render(" │")
	var b strings.Builder
	b.WriteString(sep)
	used += lipgloss.Width(sep)

	for i, name := range names {
		label := runewidth.Truncate(name, maxItemWidth, ellipsis)

		style := m.styles.Item
		if i == selected {
			style = m.styles.Selected
		}
		item := style.Render(label)

		w := lipgloss.Width(item)
		if m.width > 0 && used+w > m.width {
			break
		}
		b.WriteString(item)
		used += w
	}

	return b.String()
}

// renderFooter draws the key help and, when a timeout applies, its length
func (m Model) renderFooter() string {
	footer := m.help.View(m.keys)
	if m.timeout > 0 {
		footer += m.styles.Status.Render(fmt.Sprintf("  idle exit %s", m.timeout))
	}
	return footer
}
