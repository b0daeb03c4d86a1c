package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary draws the end-of-run counters as a two-column table. Cell
// widths are measured with lipgloss.Width so non-ASCII labels stay aligned.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label); w > labelWidth {
			labelWidth = w
		}
		if w := lipgloss.Width(row.Value); w > valueWidth {
			valueWidth = w
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, hline)

	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s | %s",
			labelStyle.Render(padRight(row.Label, labelWidth)),
			valueStyle.Render(padRight(row.Value, valueWidth)),
		))
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
)
