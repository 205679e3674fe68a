package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/deltabench/pkg/harness"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, faster
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors, slower
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleFaster = lipgloss.NewStyle().Foreground(colorGreen)
	styleSlower = lipgloss.NewStyle().Foreground(colorRed)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(18)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Tables
// =============================================================================

// newTable returns a table with the shared border and header styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

// renderResults renders benchmark results as a table. The delta column shows
// the change against the saved baseline, colored by direction.
func renderResults(results []harness.Result) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.Name,
			formatScore(r.Score),
			strconv.Itoa(r.Runs),
			r.Elapsed.Round(time.Millisecond).String(),
			formatBaseline(r),
			formatDelta(r),
		}
	}

	return newTable("Workload", "Score (runs/s)", "Runs", "Elapsed", "Baseline", "Delta").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(results) {
				return base
			}
			switch col {
			case 1:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case 2, 3, 4:
				return base.Foreground(colorGray).Align(lipgloss.Right)
			case 5:
				r := results[row]
				switch {
				case r.Baseline == nil:
					return base.Foreground(colorDim).Align(lipgloss.Right)
				case r.Delta >= 0:
					return base.Inherit(styleFaster).Align(lipgloss.Right)
				default:
					return base.Inherit(styleSlower).Align(lipgloss.Right)
				}
			}
			return base
		}).
		Render()
}

// renderBaselines renders saved baselines as a table.
func renderBaselines(baselines []harness.Baseline) string {
	rows := make([][]string, len(baselines))
	for i, b := range baselines {
		rows[i] = []string{
			b.Workload,
			formatScore(b.Score),
			strconv.Itoa(b.Runs),
			b.RecordedAt.Local().Format("2006-01-02 15:04"),
			shortID(b.RunID),
		}
	}
	return newTable("Workload", "Score (runs/s)", "Runs", "Recorded", "Run").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

// =============================================================================
// Formatting
// =============================================================================

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 3, 64)
}

func formatBaseline(r harness.Result) string {
	if r.Baseline == nil {
		return "—"
	}
	return formatScore(r.Baseline.Score)
}

func formatDelta(r harness.Result) string {
	if r.Baseline == nil {
		return "—"
	}
	return fmt.Sprintf("%+.1f%%", r.Delta)
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
