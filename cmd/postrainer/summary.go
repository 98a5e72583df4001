package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/postrainer/internal/statistics"
	"github.com/lox/postrainer/internal/tui"
)

// printSummary writes the per-mode results of a finished drill
func printSummary(w io.Writer, stats *statistics.Statistics) {
	var rows [][]string
	for _, ms := range stats.Summary() {
		mode := ms.Mode
		if mode == "" {
			mode = "total"
		}
		rows = append(rows, []string{
			mode,
			strconv.Itoa(ms.Correct),
			strconv.Itoa(ms.Wrong),
			strconv.Itoa(ms.Expired),
			fmt.Sprintf("%.0f%%", ms.Accuracy*100),
			fmt.Sprintf("%.1fs", ms.MeanResponse),
			fmt.Sprintf("%.1fs", ms.P90),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tui.InfoStyle).
		Headers("MODE", "CORRECT", "WRONG", "TIMED OUT", "ACCURACY", "AVG", "P90").
		Rows(rows...)

	_, _ = fmt.Fprintln(w, t.Render())
}
