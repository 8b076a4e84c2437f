package rules_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/srclint/pkg/lint/rules"
)

func TestBlanketDisable_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		options      map[string]any
		wantMessages []string
	}{
		{
			name:         "no directives",
			content:      "let x = 1\n",
			wantMessages: nil,
		},
		{
			name:         "balanced pair is clean",
			content:      "// srclint:disable rule_a\ncode()\n// srclint:enable rule_a\n",
			wantMessages: nil,
		},
		{
			name:    "double disable",
			content: "// srclint:disable rule_a\n// srclint:disable rule_a\n// srclint:enable rule_a\n",
			wantMessages: []string{
				"The 'rule_a' rule is already disabled",
			},
		},
		{
			name:    "enable without disable",
			content: "// srclint:enable rule_a\n",
			wantMessages: []string{
				"The 'rule_a' rule was not disabled",
			},
		},
		{
			name:    "left disabled through end of file",
			content: "// srclint:disable rule_a\ncode()\n",
			wantMessages: []string{
				"Use 'this', 'next', or 'previous' instead of disabling the 'rule_a' rule for the rest of the file, or re-enable it as soon as possible",
			},
		},
		{
			name:         "scoped directive is fine",
			content:      "// srclint:disable:next rule_a\ncode()\n",
			wantMessages: nil,
		},
		{
			name:         "allowed identifier may stay disabled",
			content:      "// srclint:disable rule_a\ncode()\n",
			options:      map[string]any{"allowed_rule_identifiers": []string{"rule_a"}},
			wantMessages: nil,
		},
		{
			name:    "disable all then disable member",
			content: "// srclint:disable all\n// srclint:disable trailing_whitespace\n// srclint:enable all\n",
			wantMessages: []string{
				"The 'trailing_whitespace' rule is already disabled",
			},
		},
		{
			name:         "enable all on clean file flags nothing",
			content:      "// srclint:enable all\ncode()\n",
			wantMessages: nil,
		},
		{
			name:    "always blanket rule enabled",
			content: "// srclint:enable rule_x\n",
			options: map[string]any{"always_blanket_disable_rule_identifiers": []string{"rule_x"}},
			wantMessages: []string{
				"The 'rule_x' rule was not disabled",
				"The 'rule_x' rule does not need to be re-enabled; it applies to the whole file",
			},
		},
		{
			name:    "always blanket rule scoped",
			content: "// srclint:disable:next rule_x\ncode()\n",
			options: map[string]any{"always_blanket_disable_rule_identifiers": []string{"rule_x"}},
			wantMessages: []string{
				"The 'rule_x' rule cannot be disabled for a single line; it applies to the whole file",
			},
		},
		{
			name:         "always blanket rule left disabled is allowed",
			content:      "// srclint:disable rule_x\ncode()\n",
			options:      map[string]any{"always_blanket_disable_rule_identifiers": []string{"rule_x"}},
			wantMessages: nil,
		},
	}

	rule := rules.NewBlanketDisableRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newRuleContext(t, tt.content, tt.options)
			diags, err := rule.Apply(ctx)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}

			if len(diags) != len(tt.wantMessages) {
				var got []string
				for _, d := range diags {
					got = append(got, d.Message)
				}
				t.Fatalf("got %d diagnostics %v, want %d", len(diags), got, len(tt.wantMessages))
			}
			for i, want := range tt.wantMessages {
				if diags[i].Message != want {
					t.Errorf("message %d = %q, want %q", i, diags[i].Message, want)
				}
			}
		})
	}
}

func TestBlanketDisable_ViolationLocatedAtIntroducer(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"code()",
		"// srclint:disable rule_a",
		"more()",
	}, "\n") + "\n"

	rule := rules.NewBlanketDisableRule()
	ctx := newRuleContext(t, content, nil)

	diags, err := rule.Apply(ctx)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].StartLine != 2 {
		t.Errorf("violation at line %d, want 2 (the introducing directive)", diags[0].StartLine)
	}
}

func TestBlanketDisable_NeverFixable(t *testing.T) {
	t.Parallel()

	rule := rules.NewBlanketDisableRule()
	if rule.CanFix() {
		t.Error("blanket_disable must be detection-only")
	}
}
