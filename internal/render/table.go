package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

// Table writes rows as aligned columns with a styled header. All cell text
// is assumed to be already cleaned; callers own sanitization because only
// they know which cells came from the kernel.
func Table(w io.Writer, rows []Row) {
	widths := [2]int{len("FD"), len("TYPE")}
	for _, row := range rows {
		if len(row.ID) > widths[0] {
			widths[0] = len(row.ID)
		}
		if len(row.Kind) > widths[1] {
			widths[1] = len(row.Kind)
		}
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", widths[0], "FD", widths[1], "TYPE", "DETAIL")
	fmt.Fprintln(w, headerStyle.Render(header))
	for _, row := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", widths[0], row.ID, widths[1], row.Kind, row.Detail)
	}
}

// KV writes an aligned key/value block, used for the process summary.
func KV(w io.Writer, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(fmt.Sprintf("%-*s", width, p[0])), p[1])
	}
}

// Truncate shortens a cell to fit a column, marking the cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
