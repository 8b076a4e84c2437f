package rules_test

import (
	"testing"

	"github.com/yaklabco/srclint/pkg/lint/rules"
)

func TestTrailingWhitespace_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		options   map[string]any
		wantCount int
		wantLine  int
	}{
		{
			name:      "clean file",
			content:   "let x = 1\nlet y = 2\n",
			wantCount: 0,
		},
		{
			name:      "trailing spaces",
			content:   "let x = 1   \n",
			wantCount: 1,
			wantLine:  1,
		},
		{
			name:      "trailing tab",
			content:   "let x = 1\t\n",
			wantCount: 1,
			wantLine:  1,
		},
		{
			name:      "one violation per line",
			content:   "a  \nb\t\nc\n",
			wantCount: 2,
		},
		{
			name:      "comment line ignored by default",
			content:   "// note  \n",
			wantCount: 0,
		},
		{
			name:      "comment line flagged when option off",
			content:   "// note  \n",
			options:   map[string]any{"ignore_comments": false},
			wantCount: 1,
			wantLine:  1,
		},
		{
			name:      "whitespace-only line flagged by default",
			content:   "a\n   \nb\n",
			wantCount: 1,
			wantLine:  2,
		},
		{
			name:      "whitespace-only line ignored with option",
			content:   "a\n   \nb\n",
			options:   map[string]any{"ignore_empty_lines": true},
			wantCount: 0,
		},
	}

	rule := rules.NewTrailingWhitespaceRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newRuleContext(t, tt.content, tt.options)
			diags, err := rule.Apply(ctx)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if len(diags) != tt.wantCount {
				t.Fatalf("Apply returned %d diagnostics, want %d", len(diags), tt.wantCount)
			}
			if tt.wantCount == 1 && diags[0].StartLine != tt.wantLine {
				t.Errorf("diagnostic at line %d, want %d", diags[0].StartLine, tt.wantLine)
			}
		})
	}
}

func TestTrailingWhitespace_DiagnosticSpansWhitespaceRun(t *testing.T) {
	t.Parallel()

	ctx := newRuleContext(t, "let x = 1   \n", nil)
	rule := rules.NewTrailingWhitespaceRule()

	diags, err := rule.Apply(ctx)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.StartColumn != 10 || d.EndColumn != 13 {
		t.Errorf("columns = (%d, %d), want (10, 13)", d.StartColumn, d.EndColumn)
	}
	if !d.HasFix() {
		t.Error("diagnostic should carry fix edits")
	}
}

func TestTrailingWhitespace_Correct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		options     map[string]any
		want        string
		wantApplied int
	}{
		{
			name:        "trims one line",
			content:     "let x = 1   \n",
			want:        "let x = 1\n",
			wantApplied: 1,
		},
		{
			name:        "trims multiple lines",
			content:     "a  \nb\nc\t\n",
			want:        "a\nb\nc\n",
			wantApplied: 2,
		},
		{
			name:        "clean file returns original bytes",
			content:     "a\nb\n",
			want:        "a\nb\n",
			wantApplied: 0,
		},
		{
			name:        "comment lines preserved by default",
			content:     "// note  \ncode  \n",
			want:        "// note  \ncode\n",
			wantApplied: 1,
		},
		{
			name:        "suppressed line untouched",
			content:     "bad  // srclint:disable:this trailing_whitespace  \nworse  \n",
			options:     map[string]any{"ignore_comments": false},
			want:        "bad  // srclint:disable:this trailing_whitespace  \nworse\n",
			wantApplied: 1,
		},
	}

	rule := rules.NewTrailingWhitespaceRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newRuleContext(t, tt.content, tt.options)
			got, applied, err := rule.Correct(ctx)
			if err != nil {
				t.Fatalf("Correct: %v", err)
			}
			if applied != tt.wantApplied {
				t.Errorf("applied = %d, want %d", applied, tt.wantApplied)
			}
			if string(got) != tt.want {
				t.Errorf("Correct = %q, want %q", got, tt.want)
			}
		})
	}
}
