// Package directive implements srclint's comment-based suppression model:
// the directive value types, the comment scanner that produces them, and the
// tracker that answers "is this rule suppressed at this line".
package directive

import "strings"

// RuleID identifies a lint rule in a directive. The wildcard RuleIDAll matches
// every rule. Values are normalized (lowercased, trimmed) at construction.
type RuleID string

// RuleIDAll is the wildcard identifier covering every known rule.
const RuleIDAll RuleID = "all"

// NewRuleID normalizes a raw identifier into a RuleID.
func NewRuleID(raw string) RuleID {
	return RuleID(strings.ToLower(strings.TrimSpace(raw)))
}

// IsAll reports whether this identifier is the wildcard.
func (id RuleID) IsAll() bool {
	return id == RuleIDAll
}

// Action is what a directive does to the rules it names.
type Action int

const (
	// ActionDisable suppresses the named rules.
	ActionDisable Action = iota

	// ActionEnable lifts a prior blanket disable of the named rules.
	ActionEnable
)

// String returns the directive keyword for the action.
func (a Action) String() string {
	if a == ActionEnable {
		return "enable"
	}
	return "disable"
}

// Scope is the textual range a directive applies to.
type Scope int

const (
	// ScopeBlanket applies from the directive to the end of the file
	// (until a matching enable).
	ScopeBlanket Scope = iota

	// ScopeThisLine applies only to the directive's own line.
	ScopeThisLine

	// ScopeNextLine applies only to the line after the directive.
	ScopeNextLine

	// ScopePreviousLine applies only to the line before the directive.
	ScopePreviousLine
)

// String returns the scope modifier as written in a comment ("" for blanket).
func (s Scope) String() string {
	switch s {
	case ScopeThisLine:
		return "this"
	case ScopeNextLine:
		return "next"
	case ScopePreviousLine:
		return "previous"
	default:
		return ""
	}
}

// Directive is one parsed suppression comment. Directives are immutable
// values; a file's directives are always handled as an ordered list.
type Directive struct {
	// Action is disable or enable.
	Action Action

	// Scope is blanket or one of the single-line modifiers.
	Scope Scope

	// RuleIDs is the non-empty set of identifiers the directive names.
	// A comment naming no identifiers never becomes a Directive.
	RuleIDs []RuleID

	// AnchorLine is the 1-based line number of the directive comment.
	AnchorLine int

	// Start and End are the byte offsets of the directive comment in the
	// original text, used to locate violations about the directive itself.
	Start int
	End   int
}

// Names reports whether the directive names the given rule, either directly
// or via the wildcard.
func (d Directive) Names(id RuleID) bool {
	for _, rid := range d.RuleIDs {
		if rid == id || rid.IsAll() {
			return true
		}
	}
	return false
}

// ResolvesTo returns the single line a scoped directive applies to.
// Returns (0, false) for blanket directives.
func (d Directive) ResolvesTo() (int, bool) {
	switch d.Scope {
	case ScopeThisLine:
		return d.AnchorLine, true
	case ScopeNextLine:
		return d.AnchorLine + 1, true
	case ScopePreviousLine:
		return d.AnchorLine - 1, true
	default:
		return 0, false
	}
}
