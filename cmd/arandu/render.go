package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/arandu/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func renderReport(w io.Writer, report *simulator.Report) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Quality run %s: seed %d, %d streams x %d draws (%s)",
		report.RunID, report.Seed, report.Workers, report.Draws, report.Duration.Round(time.Millisecond))))
	fmt.Fprintln(w)

	for _, c := range report.Checks {
		status := passStyle.Render("PASS")
		if !c.Passed {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintf(w, "  %s  %-16s %s\n", status, c.Name, detailStyle.Render(c.Detail))
	}

	fmt.Fprintln(w)
	failed := len(report.Failed())
	if failed == 0 {
		fmt.Fprintln(w, passStyle.Render(fmt.Sprintf("All %d checks passed", len(report.Checks))))
	} else {
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("%d of %d checks failed", failed, len(report.Checks))))
	}
}
