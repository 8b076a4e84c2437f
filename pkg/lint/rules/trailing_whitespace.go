package rules

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/fix"
	"github.com/yaklabco/srclint/pkg/lint"
	"github.com/yaklabco/srclint/pkg/source"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"trailing_whitespace",
			"no-trailing-whitespace",
			"Lines should not have trailing whitespace",
			[]string{"whitespace"},
			true,
		),
	}
}

// qualifies reports whether the 1-based line has trimmable trailing
// whitespace under the configured options. One violation per line.
func (r *TrailingWhitespaceRule) qualifies(ctx *lint.RuleContext, lineNum int) bool {
	if !lint.HasTrailingWhitespace(ctx.File, lineNum) {
		return false
	}

	ignoreComments := ctx.OptionBool("ignore_comments", true)
	ignoreEmptyLines := ctx.OptionBool("ignore_empty_lines", false)

	if ignoreEmptyLines && lint.IsBlankLine(ctx.File, lineNum) {
		return false
	}

	if ignoreComments {
		if tok, ok := ctx.File.LastTokenOnLine(lineNum); ok && tok.Kind == source.TokComment {
			return false
		}
	}

	return true
}

// Apply reports one diagnostic per line carrying trailing whitespace.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= len(ctx.File.Lines); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !r.qualifies(ctx, lineNum) {
			continue
		}

		start, end := lint.TrailingWhitespaceRange(ctx.File, lineNum)
		if start < 0 || end <= start {
			continue
		}

		builder := fix.NewEditBuilder()
		builder.Delete(start, end)

		line := ctx.File.Lines[lineNum-1]
		pos := lint.Position{
			StartLine:   lineNum,
			StartColumn: start - line.StartOffset + 1,
			EndLine:     lineNum,
			EndColumn:   end - line.StartOffset + 1,
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, pos, "Trailing whitespace").
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Remove trailing whitespace").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// Correct rebuilds the whole document: every line (trimmed or original) is
// joined with a single newline. A file ending in a newline keeps it, because
// the line index carries a final empty line for such files. This is the
// whole-document counterpart of the range-splice strategy, suited to edits
// that may touch most lines.
func (r *TrailingWhitespaceRule) Correct(ctx *lint.RuleContext) ([]byte, int, error) {
	if ctx.File == nil {
		return nil, 0, nil
	}

	file := ctx.File
	applied := 0
	lines := make([][]byte, 0, len(file.Lines))

	for lineNum := 1; lineNum <= len(file.Lines); lineNum++ {
		if ctx.Cancelled() {
			return file.Content, 0, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		content := lint.LineContent(file, lineNum)

		if r.qualifies(ctx, lineNum) && !ctx.Suppressed(r.ID(), lineNum) {
			trimmed := bytes.TrimRight(content, " \t")
			if len(trimmed) != len(content) {
				applied++
				content = trimmed
			}
		}

		lines = append(lines, content)
	}

	// Nothing trimmed: hand back the original bytes so the caller skips the
	// write entirely instead of writing a normalized but equivalent document.
	if applied == 0 {
		return file.Content, 0, nil
	}

	return bytes.Join(lines, []byte("\n")), applied, nil
}
