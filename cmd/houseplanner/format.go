package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

var (
	colorError   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("ERRORS (%d):", len(r.Errors))))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("WARNINGS (%d):", len(r.Warnings))))
		for _, wr := range r.Warnings {
			printResult(w, wr)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("INFO (%d):", len(r.Info))))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: %s (%s)\n", successStyle.Render("VALID"), r.Summary)
	} else {
		fmt.Fprintf(w, "Result: %s (%s)\n", errorStyle.Render("INVALID"), r.Summary)
	}
}

func printWallFindings(w io.Writer, name string, r *validation.Report) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Wall %q", name)))
	findings := r.ForWall(name)
	if len(findings) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no findings"))
	}
	for _, res := range findings {
		printResult(w, res)
	}
	fmt.Fprintln(w)

	if r.WallValid(name) {
		fmt.Fprintf(w, "Result: %s\n", successStyle.Render("VALID"))
	} else {
		fmt.Fprintf(w, "Result: %s\n", errorStyle.Render("INVALID"))
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.SpecPath != "" {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("    -> %s = %v", res.SpecPath, res.ActualValue)))
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printWall(w io.Writer, wall opening.Wall) {
	fmt.Fprintln(w, headingStyle.Render("Wall"))
	fmt.Fprintf(w, "  anchor:     (%.2f, %.2f, %.2f)\n", wall.Anchor.X, wall.Anchor.Y, wall.Anchor.Z)
	fmt.Fprintf(w, "  size:       %.2f × %.2f × %.2f m\n", wall.Size.Width, wall.Size.Height, wall.Size.Depth)
	fmt.Fprintf(w, "  available:  %.2f m\n", wall.Available())
	fmt.Fprintln(w)
}

func printCapacity(w io.Writer, wall opening.Wall, r opening.CapacityResult) {
	printWall(w, wall)

	if !r.Valid {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render("INFEASIBLE:"), r.Message)
		return
	}

	fmt.Fprintln(w, headingStyle.Render("Capacity"))
	fmt.Fprintf(w, "  openings:   %d (%.2f m wide, %.2f m apart)\n", r.MaxCount, r.ChosenOpeningWidth, r.ChosenSpacing)
	fmt.Fprintf(w, "  used width: %.2f m\n", r.UsedWidth)
	fmt.Fprintf(w, "  margin:     %.2f m\n", r.RemainingMargin)
	fmt.Fprintln(w)

	if len(r.Positions) > 0 {
		fmt.Fprintf(w, "%-4s %10s %10s %10s\n", "#", "x", "y", "z")
		for i, p := range r.Positions {
			fmt.Fprintf(w, "%-4d %10.3f %10.3f %10.3f\n", i+1, p.X, p.Y, p.Z)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s %s\n", successStyle.Render("OK:"), r.Message)
}

func printOptimize(w io.Writer, wall opening.Wall, count int, height float64, r opening.OptimizeResult) {
	printWall(w, wall)

	if !r.Valid {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render("INFEASIBLE:"), r.Message)
		return
	}

	fmt.Fprintln(w, headingStyle.Render("Optimized dimensions"))
	fmt.Fprintf(w, "  count:      %d\n", count)
	fmt.Fprintf(w, "  width:      %.3f m\n", r.OpeningWidth)
	fmt.Fprintf(w, "  spacing:    %.3f m\n", r.Spacing)
	fmt.Fprintf(w, "  height:     %.3f m\n", height)
	if !opening.SpacingRange.Contains(r.Spacing) {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("  spacing is outside %.1f-%.1f m", opening.MinSpacing, opening.MaxSpacing)))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("OK:"), r.Message)
}
