// Package ui provides the interactive placeholder browser.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for the filterable list. Color output is disabled when stdout is not
// a color-capable terminal.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/phex-cli/phex/internal/format"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// Entry is one placeholder shown in the browser.
type Entry struct {
	Name  string
	Value string // resolved value for the loaded image
}

// entrySource implements fuzzy.Source over entries.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// browserModel is the bubbletea model for placeholder selection.
type browserModel struct {
	entries   []Entry
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  *Entry
	cancelled bool
	maxHeight int
	plain     bool // no styling on dumb terminals
}

func newBrowserModel(entries []Entry) browserModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	plain := profile == colorprofile.NoTTY || profile == colorprofile.Ascii

	return browserModel{
		entries:   entries,
		filtered:  allMatches(entries),
		textInput: ti,
		maxHeight: 12,
		plain:     plain,
	}
}

// allMatches lists every entry unfiltered, in declaration order.
func allMatches(entries []Entry) []fuzzy.Match {
	matches := make([]fuzzy.Match, len(entries))
	for i := range entries {
		matches[i] = fuzzy.Match{Str: entries[i].Name, Index: i}
	}
	return matches
}

func (m browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.entries[m.filtered[m.cursor].Index]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = filterEntries(m.entries, m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterEntries ranks entries against the query.
func filterEntries(entries []Entry, query string) []fuzzy.Match {
	if query == "" {
		return allMatches(entries)
	}
	return fuzzy.FindFrom(query, entrySource(entries))
}

func (m browserModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(m.style(dimStyle, "no matching placeholders"))
		sb.WriteString("\n")
		return sb.String()
	}

	start, end := window(m.cursor, len(m.filtered), m.maxHeight)
	for i := start; i < end; i++ {
		entry := m.entries[m.filtered[i].Index]
		line := fmt.Sprintf("$(%s)", entry.Name)
		if i == m.cursor {
			sb.WriteString(m.style(cursorStyle, "> "))
			sb.WriteString(m.style(selectedStyle, line))
		} else {
			sb.WriteString("  ")
			sb.WriteString(m.style(unselectedStyle, line))
		}
		sb.WriteString("\n")
	}

	current := m.entries[m.filtered[m.cursor].Index]
	sb.WriteString("\n")
	sb.WriteString(m.style(dimStyle, format.PlaceholderHelp(current.Name)))
	sb.WriteString("\n")
	sb.WriteString(m.style(dimStyle, "value: "))
	sb.WriteString(format.DisplayValue(current.Value))
	sb.WriteString("\n\n")
	sb.WriteString(m.style(dimStyle, "enter: select  esc: cancel"))
	sb.WriteString("\n")

	return sb.String()
}

func (m browserModel) style(s lipgloss.Style, text string) string {
	if m.plain {
		return text
	}
	return s.Render(text)
}

// window clamps the visible slice of the list around the cursor.
func window(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// Browse runs the interactive placeholder browser and returns the
// selected placeholder name. Returns "" if the user cancelled.
func Browse(entries []Entry) (string, error) {
	p := tea.NewProgram(newBrowserModel(entries))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("placeholder browser: %w", err)
	}

	m, ok := final.(browserModel)
	if !ok || m.cancelled || m.selected == nil {
		return "", nil
	}
	return m.selected.Name, nil
}
