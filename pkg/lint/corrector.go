package lint

import (
	"github.com/yaklabco/srclint/pkg/fix"
)

// Candidate is a byte range a rule identified as a potential violation,
// expressed against the snapshot it was derived from.
type Candidate struct {
	// Start and End are byte offsets into the original content.
	Start int
	End   int
}

// Replacer computes the replacement text for a surviving candidate.
// It receives the original content the candidate was derived from; the
// replacement may depend on neighboring captured text.
type Replacer func(content []byte, c Candidate) string

// ApplyCorrections is the generic correction algorithm shared by every
// correctable rule that edits in place:
//
//  1. Candidates whose start line is suppressed for the rule are dropped.
//  2. With nothing left, the original content is returned with applied == 0,
//     so callers can skip the write entirely.
//  3. Survivors are spliced from highest start offset to lowest into one
//     owned buffer (fix.ApplyEdits), which keeps the offsets of earlier,
//     not-yet-applied ranges valid regardless of replacement length.
//  4. Replacements identical to the original slice are not counted.
//
// The algorithm is format-agnostic: it never cares how candidates were
// discovered (regex scan, line iteration, or anything else).
func ApplyCorrections(ctx *RuleContext, ruleID string, candidates []Candidate, replace Replacer) ([]byte, int) {
	content := ctx.File.Content

	edits := make([]fix.TextEdit, 0, len(candidates))
	for _, c := range candidates {
		if c.Start < 0 || c.End > len(content) || c.Start > c.End {
			continue
		}

		line, _ := ctx.File.LineAt(c.Start)
		if ctx.Suppressed(ruleID, line) {
			continue
		}

		edits = append(edits, fix.TextEdit{
			StartOffset: c.Start,
			EndOffset:   c.End,
			NewText:     replace(content, c),
		})
	}

	if len(edits) == 0 {
		return content, 0
	}

	return fix.ApplyEdits(content, edits)
}

// FilterSuppressed drops candidates whose start line is suppressed for the
// rule. Detection-only callers use this to report the same set of ranges the
// corrector would touch.
func FilterSuppressed(ctx *RuleContext, ruleID string, candidates []Candidate) []Candidate {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		line, _ := ctx.File.LineAt(c.Start)
		if ctx.Suppressed(ruleID, line) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
