package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/deltabench/pkg/workloads"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// WorkloadPickerModel - Interactive workload selection
// =============================================================================

// WorkloadPickerModel is the bubbletea model behind `bench --pick`. Space
// toggles a workload, "a" toggles all, enter confirms.
type WorkloadPickerModel struct {
	Workloads []workloads.Workload
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
}

// NewWorkloadPickerModel creates a picker with the given workloads checked.
func NewWorkloadPickerModel(all []workloads.Workload, preselect []string) WorkloadPickerModel {
	checked := make(map[int]bool)
	for i, w := range all {
		for _, name := range preselect {
			if w.Name == name {
				checked[i] = true
			}
		}
	}
	return WorkloadPickerModel{Workloads: all, Checked: checked}
}

func (m WorkloadPickerModel) Init() tea.Cmd {
	return nil
}

func (m WorkloadPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Workloads)-1 {
			m.Cursor++
		}
	case " ", "x":
		m.Checked = m.toggled(m.Cursor)
	case "a":
		m.Checked = m.toggledAll()
	case "enter":
		if len(m.Selected()) == 0 {
			return m, nil
		}
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// toggled returns a copy of Checked with i flipped. The model is a value,
// so the map is copied rather than shared with earlier states.
func (m WorkloadPickerModel) toggled(i int) map[int]bool {
	out := make(map[int]bool, len(m.Checked)+1)
	for k, v := range m.Checked {
		out[k] = v
	}
	out[i] = !out[i]
	return out
}

func (m WorkloadPickerModel) toggledAll() map[int]bool {
	all := len(m.Selected()) == len(m.Workloads)
	out := make(map[int]bool, len(m.Workloads))
	for i := range m.Workloads {
		out[i] = !all
	}
	return out
}

// Selected returns the checked workload names in list order.
func (m WorkloadPickerModel) Selected() []string {
	var names []string
	for i, w := range m.Workloads {
		if m.Checked[i] {
			names = append(names, w.Name)
		}
	}
	return names
}

func (m WorkloadPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Workloads"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ run  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Workloads))
	for i, w := range m.Workloads {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		rows[i] = []string{cursor, box, w.Name, w.Description}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Workload", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row < 0 || row >= len(m.Workloads) {
				return lipgloss.NewStyle()
			}
			if col == 3 {
				return listDimStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			if m.Checked[row] {
				return listNormalStyle
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d selected", len(m.Selected()))))

	return b.String()
}

// pickWorkloads runs the picker and returns the confirmed selection, or nil
// if the user quit.
func pickWorkloads(preselect []string) ([]string, error) {
	m := NewWorkloadPickerModel(workloads.All(), preselect)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("workload picker: %w", err)
	}
	picked := final.(WorkloadPickerModel)
	if !picked.Confirmed {
		return nil, nil
	}
	return picked.Selected(), nil
}
