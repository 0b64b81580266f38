// Package clustertable renders duplicate-alert clusters as an aligned
// console table.
package clustertable

import (
	"fmt"
	"io"
	"strings"

	"notables/internal/analyzer"
)

var columns = []string{"src", "dest", "user", "signature", "severity", "alert_count"}

// Write prints one header line plus one line per cluster, with columns
// padded to the widest value.
func Write(w io.Writer, clusters []analyzer.Cluster) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}

	rows := make([][]string, 0, len(clusters))
	for _, c := range clusters {
		row := []string{
			c.Src, c.Dest, c.User, c.Signature, c.Severity,
			fmt.Sprintf("%d", c.AlertCount),
		}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	writeRow(w, columns, widths)
	for _, row := range rows {
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			// Counts right-align.
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}
