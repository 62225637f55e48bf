package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgie/internal/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" draws a separator.
func RenderTable(tbl Table) string {
	if len(tbl.Rows) == 0 && len(tbl.Headers) == 0 {
		return ""
	}

	t := theme.Active
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(t.Text)
	dimStyle := lipgloss.NewStyle().Foreground(t.Border)

	numCols := len(tbl.Headers)
	if numCols == 0 && len(tbl.Rows) > 0 {
		numCols = len(tbl.Rows[0])
	}

	widths := make([]int, numCols)
	if tbl.Widths != nil {
		copy(widths, tbl.Widths)
	} else {
		for i, h := range tbl.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range tbl.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	rule := func(left, mid, right string) string {
		var r strings.Builder
		r.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			r.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				r.WriteString(dimStyle.Render(mid))
			}
		}
		r.WriteString(dimStyle.Render(right))
		r.WriteString("\n")
		return r.String()
	}

	var b strings.Builder

	if tbl.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(tbl.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(tbl.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range tbl.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range tbl.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align value columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderUsageBar renders how much of the budget is used as a text bar.
// Usage past 100% fills the bar and is drawn in red.
func RenderUsageBar(used float64, width int) string {
	if width <= 0 {
		return ""
	}

	t := theme.Active
	pct := used
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	color := t.Green
	switch {
	case used > 1:
		color = t.Red
	case used > 0.8:
		color = t.Yellow
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.Muted)

	return fmt.Sprintf("[%s] %s", bar.ViewAs(pct), FormatPercent(used))
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
