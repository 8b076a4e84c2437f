package lint

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/directive"
	"github.com/yaklabco/srclint/pkg/source"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the tokenized file.
	Snapshot *source.FileSnapshot

	// Directives is the ordered suppression directive list for the file.
	Directives []directive.Directive

	// Diagnostics contains all issues found, after suppression filtering,
	// ordered by position.
	Diagnostics []Diagnostic

	// SuppressedCount is the number of diagnostics dropped by suppression.
	SuppressedCount int

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates tokenizing, suppression tracking, and rule execution.
type Engine struct {
	// Parser turns raw bytes into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// prepare tokenizes content and builds the per-file suppression state.
func (e *Engine) prepare(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*source.FileSnapshot, []directive.Directive, *directive.Tracker, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parse error: %w", err)
	}

	directives := directive.Extract(snapshot)

	known := make([]directive.RuleID, 0, len(e.Registry.IDs()))
	for _, id := range e.Registry.IDs() {
		known = append(known, directive.NewRuleID(id))
	}

	var exempt []directive.RuleID
	if cfg != nil {
		for _, id := range cfg.Suppression.Exempt {
			exempt = append(exempt, directive.NewRuleID(id))
		}
	}

	tracker := directive.NewTracker(directives, known, exempt, snapshot.LineCount())
	return snapshot, directives, tracker, nil
}

// LintFile tokenizes and lints a single file.
//
// Detection rules are read-only over the immutable snapshot, so they run
// concurrently; their diagnostics are then suppression-filtered and merged
// in deterministic position order.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, directives, tracker, err := e.prepare(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		Directives: directives,
		RuleErrors: make(map[string]error),
	}

	perRule := make([][]Diagnostic, len(resolved))
	ruleErrs := make([]error, len(resolved))

	g, gctx := errgroup.WithContext(ctx)
	for idx, rr := range resolved {
		g.Go(func() error {
			ruleCtx := NewRuleContext(gctx, snapshot, cfg, rr.Config)
			ruleCtx.Directives = directives
			ruleCtx.Suppression = tracker
			ruleCtx.Registry = e.Registry

			diags, err := rr.Rule.Apply(ruleCtx)
			if err != nil {
				ruleErrs[idx] = err
				return nil
			}
			perRule[idx] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("linting cancelled: %w", err)
	}

	for idx, rr := range resolved {
		if ruleErrs[idx] != nil {
			result.RuleErrors[rr.Rule.ID()] = ruleErrs[idx]
			continue
		}

		for _, diag := range perRule[idx] {
			diag.Severity = rr.Severity
			if diag.FilePath == "" {
				diag.FilePath = path
			}
			if diag.RuleName == "" {
				diag.RuleName = rr.Rule.Name()
			}

			if tracker.IsSuppressed(directive.NewRuleID(diag.RuleID), diag.StartLine) {
				result.SuppressedCount++
				continue
			}

			result.Diagnostics = append(result.Diagnostics, diag)
		}
	}

	sortDiagnostics(result.Diagnostics)

	return result, nil
}

// FixFile runs each correctable rule's correction pass sequentially and
// returns the final content plus the total number of applied corrections.
//
// Every pass re-tokenizes the latest buffer and re-derives its candidate
// ranges: offsets computed against a buffer an earlier rule has rewritten
// are never reused. While a pass runs it owns the buffer exclusively.
func (e *Engine) FixFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) ([]byte, int, error) {
	resolved := ResolveRules(e.Registry, cfg)

	total := 0
	current := content

	for _, rr := range resolved {
		if !rr.AutoFix {
			continue
		}
		correctable, ok := rr.Rule.(CorrectableRule)
		if !ok {
			continue
		}

		select {
		case <-ctx.Done():
			return current, total, fmt.Errorf("fixing cancelled: %w", ctx.Err())
		default:
		}

		snapshot, directives, tracker, err := e.prepare(ctx, path, current, cfg)
		if err != nil {
			return current, total, err
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Directives = directives
		ruleCtx.Suppression = tracker
		ruleCtx.Registry = e.Registry

		corrected, applied, err := correctable.Correct(ruleCtx)
		if err != nil {
			// A single rule's failure never aborts the rest of the pass.
			continue
		}
		if applied > 0 {
			current = corrected
			total += applied
		}
	}

	return current, total, nil
}

// sortDiagnostics orders diagnostics by position, then rule ID.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].StartLine != diags[j].StartLine {
			return diags[i].StartLine < diags[j].StartLine
		}
		if diags[i].StartColumn != diags[j].StartColumn {
			return diags[i].StartColumn < diags[j].StartColumn
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
