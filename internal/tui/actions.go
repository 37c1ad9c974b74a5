package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/varalys/luhn/internal/engine"
)

// generateSequence produces a fresh valid sequence and loads it into the
// input field.
func (m Model) generateSequence() tea.Cmd {
	length := m.generateLength
	return func() tea.Msg {
		seq, err := engine.Generate(length)
		if err != nil {
			return statusMsg(fmt.Sprintf("Generate failed: %v", err))
		}
		return generatedMsg(seq)
	}
}

// copySequence completes the current input with its check digit and puts
// the full sequence on the system clipboard.
func (m Model) copySequence() tea.Cmd {
	v := m.input.Value()
	if v == "" {
		return func() tea.Msg {
			return statusMsg("Nothing to copy")
		}
	}
	d, err := m.checksum(v)
	if err != nil {
		return func() tea.Msg {
			return statusMsg("Cannot complete: not a checkable payload")
		}
	}
	full := v + string(d)
	return func() tea.Msg {
		if err := clipboard.WriteAll(full); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg("Copied: " + full)
	}
}

// statusMsg updates the status bar text.
type statusMsg string

// generatedMsg carries a freshly generated sequence into the input field.
type generatedMsg string
