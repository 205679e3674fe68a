package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deltabench/pkg/workloads"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderWorkloads(workloads.All()))
			return nil
		},
	}
}

func renderWorkloads(all []workloads.Workload) string {
	rows := make([][]string, len(all))
	for i, w := range all {
		rows[i] = []string{w.Name, w.Description}
	}
	return newTable("Workload", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return StyleNumber.Padding(0, 1)
			default:
				return StyleDim.Padding(0, 1)
			}
		}).
		Render()
}
