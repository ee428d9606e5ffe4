package corruption

import (
	"fmt"
	"strings"
)

// ProblemKind classifies a curation mistake in a Map
type ProblemKind string

const (
	ProblemDuplicate    ProblemKind = "duplicate"    // Same corrupted form listed twice
	ProblemPreempted    ProblemKind = "preempted"    // An earlier corrupted form is a substring of this one
	ProblemUnstable     ProblemKind = "unstable"     // A correct form contains a corrupted form, so repair is not idempotent
	ProblemInconsistent ProblemKind = "inconsistent" // Corrupted form is not a Windows-1252 spelling of the correct form, exact or flattened
)

// Problem describes one audit finding
type Problem struct {
	Kind   ProblemKind `json:"kind" yaml:"kind"`
	Index  int         `json:"index" yaml:"index"`   // Entry the problem is reported against
	Other  int         `json:"other" yaml:"other"`   // Related entry, -1 if none
	Detail string      `json:"detail" yaml:"detail"` // Human-readable description
}

func (p Problem) String() string {
	return fmt.Sprintf("#%d %s: %s", p.Index, p.Kind, p.Detail)
}

// Audit checks a Map for ordering and consistency mistakes.
// The repair pass never calls it; it exists for curators and tests.
func Audit(m Map) []Problem {
	var problems []Problem

	for j, later := range m {
		for i := 0; i < j; i++ {
			earlier := m[i]
			switch {
			case earlier.Corrupted == later.Corrupted:
				problems = append(problems, Problem{
					Kind:   ProblemDuplicate,
					Index:  j,
					Other:  i,
					Detail: fmt.Sprintf("%s repeats %q from #%d", later.Name, later.Corrupted, i),
				})
			case earlier.Corrupted == "":
				// Apply skips empty patterns
			case strings.Contains(later.Corrupted, earlier.Corrupted):
				problems = append(problems, Problem{
					Kind:   ProblemPreempted,
					Index:  j,
					Other:  i,
					Detail: fmt.Sprintf("%s is shadowed by %s (#%d)", later.Name, earlier.Name, i),
				})
			}
		}
	}

	for i, e := range m {
		for k, other := range m {
			if other.Corrupted != "" && strings.Contains(e.Correct, other.Corrupted) {
				problems = append(problems, Problem{
					Kind:   ProblemUnstable,
					Index:  i,
					Other:  k,
					Detail: fmt.Sprintf("correct form of %s contains corrupted form of %s", e.Name, other.Name),
				})
			}
		}

		if !isSpelling(e.Corrupted, e.Correct) {
			problems = append(problems, Problem{
				Kind:   ProblemInconsistent,
				Index:  i,
				Other:  -1,
				Detail: fmt.Sprintf("%q is not a Windows-1252 reading of %q", e.Corrupted, e.Correct),
			})
		}
	}

	return problems
}

// isSpelling reports whether corrupted is a Windows-1252 reading of correct,
// either exact or flattened to ASCII quotes and spaces
func isSpelling(corrupted, correct string) bool {
	for _, v := range Variants(correct) {
		if v == corrupted || Flatten(v) == corrupted {
			return true
		}
	}
	return false
}
