package rules

import (
	"fmt"
	"sort"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/directive"
	"github.com/yaklabco/srclint/pkg/lint"
)

// BlanketDisableRule audits the use of suppression directives themselves.
//
// It re-folds the file's directive stream and flags redundant disables,
// enables of rules that were never disabled, and rules left blanket-disabled
// through end of file. The rule is read-only: it never produces corrections.
type BlanketDisableRule struct {
	lint.BaseRule
}

// NewBlanketDisableRule creates a new blanket disable audit rule.
func NewBlanketDisableRule() *BlanketDisableRule {
	return &BlanketDisableRule{
		BaseRule: lint.NewBaseRule(
			"blanket_disable",
			"blanket-disable",
			"Suppression directives should be scoped or promptly re-enabled",
			[]string{"lint", "idiomatic"},
			false,
		),
	}
}

// Apply folds the directive stream and reports misuse.
func (r *BlanketDisableRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.Directives) == 0 {
		return nil, nil
	}

	allowed := toIDSet(ctx.OptionStringSlice("allowed_rule_identifiers", nil))
	alwaysBlanket := toIDSet(ctx.OptionStringSlice("always_blanket_disable_rule_identifiers", nil))

	exempt := map[directive.RuleID]struct{}{}
	if ctx.Config != nil {
		for _, id := range ctx.Config.Suppression.Exempt {
			exempt[directive.NewRuleID(id)] = struct{}{}
		}
	}

	var known []directive.RuleID
	if ctx.Registry != nil {
		for _, id := range ctx.Registry.IDs() {
			known = append(known, directive.NewRuleID(id))
		}
	}

	var diags []lint.Diagnostic

	disabled := map[directive.RuleID]struct{}{}
	introducer := map[directive.RuleID]directive.Directive{}

	for _, d := range ctx.Directives {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		switch d.Action {
		case directive.ActionDisable:
			for _, id := range expandDisable(d.RuleIDs, known, exempt) {
				if _, ok := disabled[id]; ok {
					diags = append(diags, r.violationAt(ctx, d,
						fmt.Sprintf("The '%s' rule is already disabled", id)))
				}
			}
		case directive.ActionEnable:
			for _, id := range expandEnable(d.RuleIDs, disabled) {
				if _, ok := disabled[id]; !ok {
					diags = append(diags, r.violationAt(ctx, d,
						fmt.Sprintf("The '%s' rule was not disabled", id)))
				}
			}
		}

		// Scoped directives never mutate the blanket bookkeeping.
		if d.Scope != directive.ScopeBlanket {
			continue
		}

		switch d.Action {
		case directive.ActionDisable:
			for _, id := range expandDisable(d.RuleIDs, known, exempt) {
				disabled[id] = struct{}{}
				introducer[id] = d
			}
		case directive.ActionEnable:
			for _, id := range expandEnable(d.RuleIDs, disabled) {
				delete(disabled, id)
				delete(introducer, id)
			}
		}
	}

	// Anything still disabled at end of file should have been scoped or
	// re-enabled, unless configuration explicitly permits leaving it off.
	for _, id := range sortedIDs(disabled) {
		if _, ok := allowed[id]; ok {
			continue
		}
		if _, ok := alwaysBlanket[id]; ok {
			continue
		}
		if _, ok := exempt[id]; ok {
			continue
		}
		diags = append(diags, r.violationAt(ctx, introducer[id], fmt.Sprintf(
			"Use 'this', 'next', or 'previous' instead of disabling the '%s' rule for the rest of the file, or re-enable it as soon as possible", id)))
	}

	diags = append(diags, r.auditAlwaysBlanket(ctx, alwaysBlanket)...)

	return diags, nil
}

// auditAlwaysBlanket flags directives touching rules that must stay disabled
// file-wide: enabling them is pointless and scoping them is impossible. Both
// checks run for every directive, independent of the blanket bookkeeping.
func (r *BlanketDisableRule) auditAlwaysBlanket(
	ctx *lint.RuleContext,
	alwaysBlanket map[directive.RuleID]struct{},
) []lint.Diagnostic {
	if len(alwaysBlanket) == 0 {
		return nil
	}

	var diags []lint.Diagnostic

	for _, d := range ctx.Directives {
		for _, id := range d.RuleIDs {
			if _, ok := alwaysBlanket[id]; !ok {
				continue
			}
			if d.Action == directive.ActionEnable {
				diags = append(diags, r.violationAt(ctx, d, fmt.Sprintf(
					"The '%s' rule does not need to be re-enabled; it applies to the whole file", id)))
			}
			if d.Scope != directive.ScopeBlanket {
				diags = append(diags, r.violationAt(ctx, d, fmt.Sprintf(
					"The '%s' rule cannot be disabled for a single line; it applies to the whole file", id)))
			}
		}
	}

	return diags
}

// violationAt builds a diagnostic located at the directive comment.
func (r *BlanketDisableRule) violationAt(ctx *lint.RuleContext, d directive.Directive, message string) lint.Diagnostic {
	startLine, startCol := ctx.File.LineAt(d.Start)
	endLine, endCol := ctx.File.LineAt(d.End)

	pos := lint.Position{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}

	return lint.NewDiagnosticAt(r.ID(), ctx.File.Path, pos, message).
		WithSeverity(config.SeverityWarning).
		Build()
}

// expandDisable expands a disable's identifier list, turning the wildcard
// into every known rule id except the always-exempt set. The result is
// sorted for deterministic violation order.
func expandDisable(ids []directive.RuleID, known []directive.RuleID, exempt map[directive.RuleID]struct{}) []directive.RuleID {
	set := map[directive.RuleID]struct{}{}
	for _, id := range ids {
		if id.IsAll() {
			for _, k := range known {
				if _, ok := exempt[k]; ok {
					continue
				}
				set[k] = struct{}{}
			}
			continue
		}
		set[id] = struct{}{}
	}
	return sortedIDs(set)
}

// expandEnable expands an enable's identifier list; the wildcard stands for
// whatever is currently disabled, so a bare "enable all" on a clean file
// names nothing and flags nothing.
func expandEnable(ids []directive.RuleID, disabled map[directive.RuleID]struct{}) []directive.RuleID {
	set := map[directive.RuleID]struct{}{}
	for _, id := range ids {
		if id.IsAll() {
			for k := range disabled {
				set[k] = struct{}{}
			}
			continue
		}
		set[id] = struct{}{}
	}
	return sortedIDs(set)
}

// toIDSet normalizes a raw identifier list into a set.
func toIDSet(raw []string) map[directive.RuleID]struct{} {
	set := make(map[directive.RuleID]struct{}, len(raw))
	for _, s := range raw {
		set[directive.NewRuleID(s)] = struct{}{}
	}
	return set
}

// sortedIDs returns the set's members in lexical order.
func sortedIDs(set map[directive.RuleID]struct{}) []directive.RuleID {
	out := make([]directive.RuleID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
