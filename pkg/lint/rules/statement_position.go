package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/fix"
	"github.com/yaklabco/srclint/pkg/lint"
	"github.com/yaklabco/srclint/pkg/source"
)

// Statement position modes.
const (
	// StatementModeDefault wants `else`/`catch` cuddled on the closing
	// brace's line, one space apart.
	StatementModeDefault = "default"

	// StatementModeUncuddled wants `else`/`catch` on its own line,
	// indented like the closing brace's line.
	StatementModeUncuddled = "uncuddled"
)

var (
	// defaultStatementPattern matches a closing brace, optional whitespace,
	// then a continuation keyword. Submatch 1 is the keyword.
	defaultStatementPattern = regexp.MustCompile(`\}[ \t\r\n]*(else|catch)\b`)

	// uncuddledStatementPattern additionally captures the whitespace run
	// preceding the brace (submatch 1), the separator (2), and the keyword (3).
	uncuddledStatementPattern = regexp.MustCompile(`([ \t]*)\}([ \t\r\n]*)(else|catch)\b`)
)

// StatementPositionRule checks the placement of `else` and `catch` relative
// to the closing brace that precedes them.
type StatementPositionRule struct {
	lint.BaseRule
}

// NewStatementPositionRule creates a new statement position rule.
func NewStatementPositionRule() *StatementPositionRule {
	return &StatementPositionRule{
		BaseRule: lint.NewBaseRule(
			"statement_position",
			"statement-position",
			"Else and catch should be placed consistently relative to the closing brace",
			[]string{"style"},
			true,
		),
	}
}

// statementCandidate is one brace/keyword match with its computed replacement.
type statementCandidate struct {
	lint.Candidate
	replacement string
}

// mode returns the configured placement mode.
func (r *StatementPositionRule) mode(ctx *lint.RuleContext) string {
	mode := ctx.OptionString("mode", StatementModeDefault)
	if mode != StatementModeUncuddled {
		mode = StatementModeDefault
	}
	return mode
}

// candidates scans the snapshot for brace/keyword matches that need rewriting.
// Matches whose keyword is not a classified keyword token (strings, comments)
// are excluded.
func (r *StatementPositionRule) candidates(ctx *lint.RuleContext) []statementCandidate {
	if r.mode(ctx) == StatementModeUncuddled {
		return r.uncuddledCandidates(ctx.File)
	}
	return r.defaultCandidates(ctx.File)
}

// defaultCandidates wants `} else` with exactly one space.
func (r *StatementPositionRule) defaultCandidates(file *source.FileSnapshot) []statementCandidate {
	var out []statementCandidate

	for _, m := range defaultStatementPattern.FindAllSubmatchIndex(file.Content, -1) {
		start, end := m[0], m[1]
		kwStart, kwEnd := m[2], m[3]

		if file.KindAt(kwStart) != source.TokKeyword || file.KindAt(start) != source.TokPunct {
			continue
		}

		keyword := string(file.Content[kwStart:kwEnd])
		out = append(out, statementCandidate{
			Candidate:   lint.Candidate{Start: start, End: end},
			replacement: "} " + keyword,
		})
	}

	return out
}

// uncuddledCandidates wants the keyword on the line after the brace, indented
// exactly like the brace's leading whitespace.
func (r *StatementPositionRule) uncuddledCandidates(file *source.FileSnapshot) []statementCandidate {
	var out []statementCandidate

	for _, m := range uncuddledStatementPattern.FindAllSubmatchIndex(file.Content, -1) {
		start, end := m[0], m[1]
		indentStart, indentEnd := m[2], m[3]
		sepStart, sepEnd := m[4], m[5]
		kwStart, kwEnd := m[6], m[7]

		braceOffset := indentEnd
		if file.KindAt(kwStart) != source.TokKeyword || file.KindAt(braceOffset) != source.TokPunct {
			continue
		}

		indent := string(file.Content[indentStart:indentEnd])
		sep := string(file.Content[sepStart:sepEnd])
		keyword := string(file.Content[kwStart:kwEnd])

		// Equal indentation across exactly one line break is the success
		// condition; such a match is not a candidate at all.
		if strings.Count(sep, "\n") == 1 {
			keywordIndent := sep[strings.LastIndexByte(sep, '\n')+1:]
			if keywordIndent == indent {
				continue
			}
		}

		out = append(out, statementCandidate{
			Candidate:   lint.Candidate{Start: start, End: end},
			replacement: indent + "}\n" + indent + keyword,
		})
	}

	return out
}

// Apply reports every candidate whose text differs from its replacement.
func (r *StatementPositionRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, c := range r.candidates(ctx) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		original := string(ctx.File.Content[c.Start:c.End])
		if original == c.replacement {
			continue
		}

		startLine, startCol := ctx.File.LineAt(c.Start)
		endLine, endCol := ctx.File.LineAt(c.End)

		builder := fix.NewEditBuilder()
		builder.ReplaceRange(c.Start, c.End, c.replacement)

		pos := lint.Position{
			StartLine:   startLine,
			StartColumn: startCol,
			EndLine:     endLine,
			EndColumn:   endCol,
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, pos, r.message(ctx)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Move the keyword relative to the closing brace").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// message returns the mode-specific violation message.
func (r *StatementPositionRule) message(ctx *lint.RuleContext) string {
	if r.mode(ctx) == StatementModeUncuddled {
		return "Else and catch should be on the next line, with equal indentation to the previous declaration"
	}
	return "Else and catch should be on the same line, one space after the previous declaration"
}

// Correct rewrites all non-suppressed candidates using the shared range-splice
// algorithm.
func (r *StatementPositionRule) Correct(ctx *lint.RuleContext) ([]byte, int, error) {
	if ctx.File == nil {
		return nil, 0, nil
	}

	all := r.candidates(ctx)
	candidates := make([]lint.Candidate, 0, len(all))
	replacements := make(map[int]string, len(all))
	for _, c := range all {
		candidates = append(candidates, c.Candidate)
		replacements[c.Start] = c.replacement
	}

	content, applied := lint.ApplyCorrections(ctx, r.ID(), candidates, func(_ []byte, c lint.Candidate) string {
		return replacements[c.Start]
	})
	return content, applied, nil
}
