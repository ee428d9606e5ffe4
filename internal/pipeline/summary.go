package pipeline

import (
	"fmt"
	"io"

	"github.com/jankowskaweronika/mojifix/internal/model"
)

// RenderSummary prints one line per report
func RenderSummary(w io.Writer, reports []*model.Report) {
	for _, r := range reports {
		switch {
		case !r.Changed:
			fmt.Fprintf(w, "✓ %s: no known mojibake\n", r.Path)
		case r.DryRun:
			fmt.Fprintf(w, "✓ %s: %s (dry run, not written)\n", r.Path, replacements(r.Total()))
		default:
			fmt.Fprintf(w, "✓ %s: %s\n", r.Path, replacements(r.Total()))
		}
	}
}

func replacements(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return fmt.Sprintf("%d replacements", n)
}

// RenderHits prints the per-entry breakdown of a report
func RenderHits(w io.Writer, r *model.Report) {
	for _, h := range r.Hits {
		fmt.Fprintf(w, "    %-26s %+q -> %s  x%d\n", h.Name, h.Corrupted, h.Correct, h.Count)
	}
}
