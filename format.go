package main

import (
	"fmt"
	"io"
	"strings"
)

// noneMarker is written when no subset beats the bare vehicle.
const noneMarker = "NONE"

// FormatResult renders sel in the output-file format: one 1-based index per
// line in ascending order, or NONE without a newline when nothing is selected.
func FormatResult(sel Selection) string {
	if !sel.Any() {
		return noneMarker
	}
	var b strings.Builder
	for _, idx := range sel.Indices() {
		fmt.Fprintf(&b, "%d\n", idx)
	}
	return b.String()
}

// WriteResult writes FormatResult(sel) to w in a single write.
func WriteResult(w io.Writer, sel Selection) error {
	_, err := io.WriteString(w, FormatResult(sel))
	return err
}

// FormatSummary produces a short human-readable report of a run.
func FormatSummary(p *Problem, r Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-8s %10s %10s\n", "Part", "Force", "Mass")
	fmt.Fprintf(&b, "%-8s %10s %10s\n", "--------", "----------", "----------")
	fmt.Fprintf(&b, "%-8s %10d %10d\n", "vehicle", p.Vehicle.Force, p.Vehicle.Mass)
	selected := r.Selection.Indices()
	for _, idx := range selected {
		part := p.Parts[idx-1]
		fmt.Fprintf(&b, "%-8d %10d %10d\n", idx, part.Force, part.Mass)
	}
	force, mass := p.Totals(r.Selection)
	fmt.Fprintf(&b, "%-8s %10s %10s\n", "--------", "----------", "----------")
	fmt.Fprintf(&b, "%-8s %10d %10d\n", "TOTAL", force, mass)
	fmt.Fprintf(&b, "acceleration %.6g (baseline %.6g), %d of %d parts, %d subsets\n",
		r.Acceleration, r.Baseline, len(selected), len(p.Parts), r.Evaluated)

	return b.String()
}
