// Package lint provides the rule engine, diagnostics, suppression handling,
// and registry for srclint.
package lint

import (
	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/fix"
)

// Position locates a diagnostic in a file. Lines and columns are 1-based;
// EndColumn may be zero when a diagnostic covers a whole line.
type Position struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid reports whether the position has at least a start line.
func (p Position) IsValid() bool {
	return p.StartLine >= 1
}

// Diagnostic represents a single lint issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// FixEdits contains the text edits to fix this issue (may be empty).
	FixEdits []fix.TextEdit
}

// HasFix returns true if this diagnostic has associated fix edits.
func (d *Diagnostic) HasFix() bool {
	return len(d.FixEdits) > 0
}

// Pos returns the diagnostic position as a Position.
func (d *Diagnostic) Pos() Position {
	return Position{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "trailing_whitespace").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["style"]).
	Tags() []string

	// CanFix returns whether this rule can auto-correct issues.
	CanFix() bool

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each violation found.
	//   - Not filter by suppression themselves; the engine does that.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// CorrectableRule is a Rule that can rewrite the file to remove its own
// violations.
//
// Correct receives a context built from the latest buffer and returns the new
// content plus the number of corrections applied. Candidate ranges must be
// derived from ctx.File.Content inside Correct, never reused from an earlier
// pass: the engine runs correction passes sequentially, and each pass owns
// the buffer exclusively for its duration.
type CorrectableRule interface {
	Rule

	// Correct returns the corrected content and the number of applied
	// corrections. applied == 0 means the content is returned unchanged.
	Correct(ctx *RuleContext) ([]byte, int, error)
}
