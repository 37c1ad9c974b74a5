package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/varalys/luhn/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	validStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7")).
			Padding(0, 1)
)

const (
	maxHistory            = 10
	defaultGenerateLength = 16
)

// entry is one checked sequence kept in the session history.
type entry struct {
	input        string
	valid        bool
	malformed    bool
	alphanumeric bool
}

// Model is the bubbletea model for the interactive checker.
type Model struct {
	input          textinput.Model // the sequence being typed
	alphanumeric   bool            // base-36 mode (ISIN-style input)
	history        []entry         // most recent first
	quitting       bool
	statusMessage  string
	generateLength int // total length for ctrl+g
}

// NewModel builds the initial model. generateLength below the minimum
// falls back to the default.
func NewModel(alphanumeric bool, generateLength int) Model {
	ti := textinput.New()
	ti.Placeholder = "4111111111111111"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	if generateLength < 2 {
		generateLength = defaultGenerateLength
	}

	return Model{
		input:          ti,
		alphanumeric:   alphanumeric,
		generateLength: generateLength,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			v := m.input.Value()
			if v == "" {
				return m, nil
			}
			m.history = append([]entry{m.checkEntry(v)}, m.history...)
			if len(m.history) > maxHistory {
				m.history = m.history[:maxHistory]
			}
			m.input.SetValue("")
			m.statusMessage = ""
			return m, nil
		case "tab":
			m.alphanumeric = !m.alphanumeric
			m.statusMessage = "Mode: " + m.modeName()
			return m, nil
		case "ctrl+g":
			return m, m.generateSequence()
		case "ctrl+y":
			return m, m.copySequence()
		}

	case generatedMsg:
		m.input.SetValue(string(msg))
		m.input.CursorEnd()
		m.statusMessage = "Generated"
		return m, nil

	case statusMsg:
		m.statusMessage = string(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) modeName() string {
	if m.alphanumeric {
		return "base-36"
	}
	return "decimal"
}

// checkEntry runs the current mode's validation over v.
func (m Model) checkEntry(v string) entry {
	ok, err := m.validate(v)
	return entry{
		input:        v,
		valid:        ok,
		malformed:    err != nil,
		alphanumeric: m.alphanumeric,
	}
}

func (m Model) validate(v string) (bool, error) {
	if m.alphanumeric {
		return engine.ValidateAlphanumeric([]byte(v))
	}
	return engine.Validate([]byte(v))
}

func (m Model) checksum(v string) (byte, error) {
	if m.alphanumeric {
		return engine.ChecksumAlphanumeric([]byte(v))
	}
	return engine.Checksum([]byte(v))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("luhn") + mutedStyle.Render("  mode: "+m.modeName()) + "\n\n"
	s += m.input.View() + "\n\n"

	if v := m.input.Value(); v != "" {
		ok, err := m.validate(v)
		switch {
		case err != nil:
			s += mutedStyle.Render("not a checkable sequence") + "\n"
		case ok:
			s += validStyle.Render("VALID") + "\n"
		default:
			s += invalidStyle.Render("INVALID") + "\n"
		}
		if d, err := m.checksum(v); err == nil {
			s += mutedStyle.Render(fmt.Sprintf("as payload: check digit %c, full sequence %s%c", d, v, d)) + "\n"
		}
		s += "\n"
	}

	if len(m.history) > 0 {
		s += keyStyle.Render("History") + "\n"
		for _, e := range m.history {
			var word string
			switch {
			case e.malformed:
				word = mutedStyle.Render("ERROR  ")
			case e.valid:
				word = validStyle.Render("VALID  ")
			default:
				word = invalidStyle.Render("INVALID")
			}
			line := "  " + word + " " + e.input
			if e.alphanumeric {
				line += mutedStyle.Render(" (base-36)")
			}
			s += line + "\n"
		}
		s += "\n"
	}

	help := "enter: check | tab: mode | ctrl+g: generate | ctrl+y: copy | esc: quit"
	if m.statusMessage != "" {
		help = m.statusMessage + "  " + mutedStyle.Render(help)
	} else {
		help = mutedStyle.Render(help)
	}
	s += statusStyle.Render(help) + "\n"

	return s
}
