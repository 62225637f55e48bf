package cli

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Box frames lines with the block string, padding every line to the widest
// visible width. Embedded escape sequences do not count towards the width.
func Box(lines []string, block string) string {
	width := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}

	edge := strings.Repeat(block, width+4)
	blank := block + " " + strings.Repeat(" ", width) + " " + block

	var b strings.Builder
	b.WriteString(edge + "\n")
	b.WriteString(blank + "\n")
	for _, line := range lines {
		pad := width - ansi.StringWidth(line)
		b.WriteString(block + " " + line + strings.Repeat(" ", pad) + " " + block + "\n")
	}
	b.WriteString(blank + "\n")
	b.WriteString(edge)
	return b.String()
}
