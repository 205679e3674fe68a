package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/deltabench/pkg/workloads"
)

func testWorkloads() []workloads.Workload {
	return []workloads.Workload{
		{Name: "DeltaBlue"},
		{Name: "SlotRead"},
		{Name: "NLRLoop"},
	}
}

func press(t *testing.T, m WorkloadPickerModel, msgs ...tea.KeyMsg) (WorkloadPickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(WorkloadPickerModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyAll   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
)

func TestPickerPreselect(t *testing.T) {
	m := NewWorkloadPickerModel(testWorkloads(), []string{"NLRLoop", "DeltaBlue"})
	got := m.Selected()
	if len(got) != 2 || got[0] != "DeltaBlue" || got[1] != "NLRLoop" {
		t.Errorf("Selected() = %v, want [DeltaBlue NLRLoop]", got)
	}
}

func TestPickerToggle(t *testing.T) {
	m := NewWorkloadPickerModel(testWorkloads(), nil)
	m, _ = press(t, m, keyDown, keySpace)

	if got := m.Selected(); len(got) != 1 || got[0] != "SlotRead" {
		t.Fatalf("Selected() = %v, want [SlotRead]", got)
	}

	m, _ = press(t, m, keySpace)
	if got := m.Selected(); len(got) != 0 {
		t.Errorf("Selected() = %v after second toggle, want none", got)
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m := NewWorkloadPickerModel(testWorkloads(), nil)
	m, _ = press(t, m, keyUp)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	m, _ = press(t, m, keyDown, keyDown, keyDown, keyDown)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
}

func TestPickerToggleAll(t *testing.T) {
	m := NewWorkloadPickerModel(testWorkloads(), []string{"SlotRead"})
	m, _ = press(t, m, keyAll)
	if got := m.Selected(); len(got) != 3 {
		t.Fatalf("Selected() = %v, want all", got)
	}
	m, _ = press(t, m, keyAll)
	if got := m.Selected(); len(got) != 0 {
		t.Errorf("Selected() = %v, want none", got)
	}
}

func TestPickerEnter(t *testing.T) {
	m := NewWorkloadPickerModel(testWorkloads(), nil)

	m, cmd := press(t, m, keyEnter)
	if m.Confirmed || cmd != nil {
		t.Error("enter with nothing selected should be ignored")
	}

	m, cmd = press(t, m, keySpace, keyEnter)
	if !m.Confirmed {
		t.Error("enter should confirm a selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPickerToggleDoesNotShareState(t *testing.T) {
	before := NewWorkloadPickerModel(testWorkloads(), nil)
	after, _ := press(t, before, keySpace)

	if len(before.Selected()) != 0 {
		t.Error("toggling mutated the earlier model")
	}
	if len(after.Selected()) != 1 {
		t.Error("toggle was lost")
	}
}
