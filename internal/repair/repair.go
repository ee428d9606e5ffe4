// Package repair applies a corruption map to text.
package repair

import (
	"strings"

	"github.com/jankowskaweronika/mojifix/internal/corruption"
	"github.com/jankowskaweronika/mojifix/internal/model"
)

// Repair fixes text with the default corruption map
func Repair(text string) string {
	out, _ := Apply(corruption.Default(), text)
	return out
}

// Apply replaces every occurrence of each entry's corrupted form with its
// correct form. Entries run in map order; each step scans left to right for
// non-overlapping matches and does not rescan its own output, but later steps
// see it. Hits lists only entries that matched.
func Apply(m corruption.Map, text string) (string, []model.Hit) {
	var hits []model.Hit

	for _, e := range m {
		if e.Corrupted == "" {
			continue
		}
		n := strings.Count(text, e.Corrupted)
		if n == 0 {
			continue
		}
		text = strings.ReplaceAll(text, e.Corrupted, e.Correct)
		hits = append(hits, model.Hit{
			Name:      e.Name,
			Corrupted: e.Corrupted,
			Correct:   e.Correct,
			Count:     n,
		})
	}

	return text, hits
}
