// Package output renders reconciliation results and errors for the
// terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/homelink/pkg/planner"
	"github.com/arthur-debert/homelink/pkg/types"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	targetStyle = lipgloss.NewStyle().Faint(true)
)

// Init disables color when stdout is not a terminal or the
// environment asks for no color.
func Init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.EnvNoColor() {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// StatusStyle returns the pterm style for a status tag. Colors follow
// the severity of the decision: green for mutations toward the
// declaration, yellow for skips and removals, red for a missing
// source, plain for convergence already reached.
func StatusStyle(status types.Status) *pterm.Style {
	switch status.Normalize() {
	case types.StatusCreated, types.StatusOverridden:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StatusSkippedForeignFile, types.StatusRemoved:
		return pterm.NewStyle(pterm.FgYellow)
	case types.StatusSkippedSourceMissing:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderResult formats one reconciliation decision as a report line.
func RenderResult(result types.Result) string {
	style := StatusStyle(result.Status)
	if result.Status == types.StatusSkippedSourceMissing {
		return fmt.Sprintf("[%s] %s -> %s",
			result.Group(),
			style.Sprint(result.Status.Label()),
			targetStyle.Render(result.Operation.SourcePath))
	}
	return fmt.Sprintf("[%s] %s -> %s",
		result.Group(),
		style.Sprint(result.Status.Label()),
		targetStyle.Render(result.TargetPath()))
}

// RenderResults writes one line per decision.
func RenderResults(w io.Writer, results []types.Result) {
	for _, result := range results {
		fmt.Fprintln(w, RenderResult(result))
	}
}

// RenderIssues writes entry-scoped manifest problems.
func RenderIssues(w io.Writer, issues []error) {
	for _, issue := range issues {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Manifest: %v", issue)))
	}
}

// RenderConflicts writes duplicate-target warnings.
func RenderConflicts(w io.Writer, conflicts []planner.Conflict) {
	for _, c := range conflicts {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgYellow).Sprintf(
			"Warning: groups %q and %q declare the same target %s (keeping %q)",
			c.Kept.Group, c.Dropped.Group, c.TargetPath, c.Kept.Group))
	}
}

// RenderError formats a fatal error.
func RenderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err))
}
