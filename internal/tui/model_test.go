package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/varalys/luhn/internal/engine"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func updated(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	out, ok := nm.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", nm)
	}
	return out, cmd
}

// =============================================================================
// Construction
// =============================================================================

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(false, 0)
	if m.generateLength != defaultGenerateLength {
		t.Errorf("generateLength = %d, want %d", m.generateLength, defaultGenerateLength)
	}
	if m.alphanumeric {
		t.Error("alphanumeric should default to false")
	}
	if !m.input.Focused() {
		t.Error("input should start focused")
	}

	m = NewModel(true, 20)
	if !m.alphanumeric {
		t.Error("alphanumeric flag not honored")
	}
	if m.generateLength != 20 {
		t.Errorf("generateLength = %d, want 20", m.generateLength)
	}
}

// =============================================================================
// Key handling
// =============================================================================

func TestEnterAddsHistoryEntry(t *testing.T) {
	m := NewModel(false, 0)
	m.input.SetValue("4111111111111111")

	m, _ = updated(t, m, keyMsg(tea.KeyEnter))

	if len(m.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(m.history))
	}
	e := m.history[0]
	if e.input != "4111111111111111" {
		t.Errorf("history input = %q", e.input)
	}
	if !e.valid || e.malformed {
		t.Errorf("entry = %+v, want valid and not malformed", e)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.input.Value())
	}
}

func TestEnterRecordsInvalidAndMalformed(t *testing.T) {
	m := NewModel(false, 0)

	m.input.SetValue("4111111111111112")
	m, _ = updated(t, m, keyMsg(tea.KeyEnter))
	if m.history[0].valid || m.history[0].malformed {
		t.Errorf("entry = %+v, want invalid and not malformed", m.history[0])
	}

	m.input.SetValue("41a1")
	m, _ = updated(t, m, keyMsg(tea.KeyEnter))
	if !m.history[0].malformed {
		t.Errorf("entry = %+v, want malformed", m.history[0])
	}
}

func TestEnterOnEmptyInputIsNoop(t *testing.T) {
	m := NewModel(false, 0)
	m, _ = updated(t, m, keyMsg(tea.KeyEnter))
	if len(m.history) != 0 {
		t.Errorf("history length = %d, want 0", len(m.history))
	}
}

func TestHistoryIsCappedNewestFirst(t *testing.T) {
	m := NewModel(false, 0)
	for i := 0; i < maxHistory; i++ {
		m.history = append(m.history, entry{input: "old"})
	}

	m.input.SetValue("91")
	m, _ = updated(t, m, keyMsg(tea.KeyEnter))

	if len(m.history) != maxHistory {
		t.Fatalf("history length = %d, want %d", len(m.history), maxHistory)
	}
	if m.history[0].input != "91" {
		t.Errorf("newest entry = %q, want %q", m.history[0].input, "91")
	}
}

func TestTabTogglesMode(t *testing.T) {
	m := NewModel(false, 0)

	m, _ = updated(t, m, keyMsg(tea.KeyTab))
	if !m.alphanumeric {
		t.Error("tab should switch to base-36 mode")
	}
	if !strings.Contains(m.statusMessage, "base-36") {
		t.Errorf("statusMessage = %q, want mode hint", m.statusMessage)
	}

	m, _ = updated(t, m, keyMsg(tea.KeyTab))
	if m.alphanumeric {
		t.Error("tab should switch back to decimal mode")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel(false, 0)
		m, cmd := updated(t, m, keyMsg(k))
		if !m.quitting {
			t.Errorf("%v: quitting not set", k)
		}
		if cmd == nil {
			t.Fatalf("%v: no command returned", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command did not quit", k)
		}
	}
}

// =============================================================================
// Messages
// =============================================================================

func TestGeneratedMsgFillsInput(t *testing.T) {
	m := NewModel(false, 0)
	m, _ = updated(t, m, generatedMsg("1234567812345670"))
	if m.input.Value() != "1234567812345670" {
		t.Errorf("input = %q", m.input.Value())
	}
	if m.statusMessage == "" {
		t.Error("statusMessage should confirm generation")
	}
}

func TestStatusMsgUpdatesStatusBar(t *testing.T) {
	m := NewModel(false, 0)
	m, _ = updated(t, m, statusMsg("hello"))
	if m.statusMessage != "hello" {
		t.Errorf("statusMessage = %q, want %q", m.statusMessage, "hello")
	}
}

// =============================================================================
// View
// =============================================================================

func TestViewShowsLiveVerdict(t *testing.T) {
	m := NewModel(false, 0)

	m.input.SetValue("4111111111111111")
	v := m.View()
	if strings.Contains(v, "INVALID") || !strings.Contains(v, "VALID") {
		t.Errorf("view should show VALID verdict:\n%s", v)
	}

	m.input.SetValue("4111111111111112")
	if v := m.View(); !strings.Contains(v, "INVALID") {
		t.Errorf("view should show INVALID verdict:\n%s", v)
	}

	m.input.SetValue("41a1")
	if v := m.View(); !strings.Contains(v, "not a checkable sequence") {
		t.Errorf("view should flag malformed input:\n%s", v)
	}
}

func TestViewShowsCompletionPreview(t *testing.T) {
	m := NewModel(false, 0)
	m.input.SetValue("7992739871")
	v := m.View()
	if !strings.Contains(v, "check digit 3") {
		t.Errorf("view should preview the check digit:\n%s", v)
	}
	if !strings.Contains(v, "79927398713") {
		t.Errorf("view should preview the full sequence:\n%s", v)
	}
}

func TestViewListsHistoryWithModeMarker(t *testing.T) {
	m := NewModel(false, 0)
	m.history = []entry{
		{input: "4111111111111111", valid: true},
		{input: "US5949181045", valid: true, alphanumeric: true},
	}
	v := m.View()
	if !strings.Contains(v, "History") {
		t.Errorf("view missing history section:\n%s", v)
	}
	if !strings.Contains(v, "(base-36)") {
		t.Errorf("view missing base-36 marker:\n%s", v)
	}
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m := NewModel(false, 0)
	m.quitting = true
	if v := m.View(); v != "" {
		t.Errorf("view while quitting = %q, want empty", v)
	}
}

// =============================================================================
// Commands
// =============================================================================

func TestGenerateSequenceCommand(t *testing.T) {
	m := NewModel(false, 12)
	cmd := m.generateSequence()
	if cmd == nil {
		t.Fatal("generateSequence returned nil command")
	}
	msg, ok := cmd().(generatedMsg)
	if !ok {
		t.Fatalf("command returned %T, want generatedMsg", cmd())
	}
	seq := string(msg)
	if len(seq) != 12 {
		t.Errorf("generated length = %d, want 12", len(seq))
	}
	if !engine.Valid(seq) {
		t.Errorf("generated sequence %q does not validate", seq)
	}
}

func TestCopySequenceWithEmptyInput(t *testing.T) {
	m := NewModel(false, 0)
	cmd := m.copySequence()
	msg, ok := cmd().(statusMsg)
	if !ok {
		t.Fatalf("command returned %T, want statusMsg", cmd())
	}
	if !strings.Contains(string(msg), "Nothing to copy") {
		t.Errorf("status = %q", msg)
	}
}

func TestCopySequenceWithMalformedInput(t *testing.T) {
	m := NewModel(false, 0)
	m.input.SetValue("41a1")
	cmd := m.copySequence()
	msg, ok := cmd().(statusMsg)
	if !ok {
		t.Fatalf("command returned %T, want statusMsg", cmd())
	}
	if !strings.Contains(string(msg), "Cannot complete") {
		t.Errorf("status = %q", msg)
	}
}
