package directive_test

import (
	"context"
	"testing"

	"github.com/yaklabco/srclint/pkg/directive"
	"github.com/yaklabco/srclint/pkg/source"
)

func parse(t *testing.T, content string) *source.FileSnapshot {
	t.Helper()
	snapshot, err := source.NewTokenizer().Parse(context.Background(), "test.go", []byte(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return snapshot
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantCount  int
		wantAction directive.Action
		wantScope  directive.Scope
		wantIDs    []directive.RuleID
		wantAnchor int
	}{
		{
			name:       "blanket disable",
			content:    "code()\n// srclint:disable rule_a\nmore()\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 2,
		},
		{
			name:       "blanket enable multiple ids",
			content:    "// srclint:enable rule_a rule_b\n",
			wantCount:  1,
			wantAction: directive.ActionEnable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{"rule_a", "rule_b"},
			wantAnchor: 1,
		},
		{
			name:       "scoped next",
			content:    "// srclint:disable:next rule_a\nviolation()\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeNextLine,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 1,
		},
		{
			name:       "scoped this trailing comment",
			content:    "violation() // srclint:disable:this rule_a\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeThisLine,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 1,
		},
		{
			name:       "scoped previous",
			content:    "violation()\n// srclint:disable:previous rule_a\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopePreviousLine,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 2,
		},
		{
			name:       "wildcard",
			content:    "// srclint:disable all\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{directive.RuleIDAll},
			wantAnchor: 1,
		},
		{
			name:       "block comment",
			content:    "/* srclint:disable rule_a */ code()\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 1,
		},
		{
			name:       "hash comment",
			content:    "# srclint:disable rule_a\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 1,
		},
		{
			name:       "identifiers are normalized",
			content:    "// srclint:disable Rule_A\n",
			wantCount:  1,
			wantAction: directive.ActionDisable,
			wantScope:  directive.ScopeBlanket,
			wantIDs:    []directive.RuleID{"rule_a"},
			wantAnchor: 1,
		},
		{name: "no identifiers is not a directive", content: "// srclint:disable\n", wantCount: 0},
		{name: "unknown command", content: "// srclint:silence rule_a\n", wantCount: 0},
		{name: "unknown modifier", content: "// srclint:disable:sometimes rule_a\n", wantCount: 0},
		{name: "marker in string literal", content: "s := \"srclint:disable rule_a\"\n", wantCount: 0},
		{name: "plain comment", content: "// nothing to see\n", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := directive.Extract(parse(t, tt.content))
			if len(got) != tt.wantCount {
				t.Fatalf("Extract returned %d directives, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}

			d := got[0]
			if d.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", d.Action, tt.wantAction)
			}
			if d.Scope != tt.wantScope {
				t.Errorf("Scope = %v, want %v", d.Scope, tt.wantScope)
			}
			if d.AnchorLine != tt.wantAnchor {
				t.Errorf("AnchorLine = %d, want %d", d.AnchorLine, tt.wantAnchor)
			}
			if len(d.RuleIDs) != len(tt.wantIDs) {
				t.Fatalf("RuleIDs = %v, want %v", d.RuleIDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if d.RuleIDs[i] != id {
					t.Errorf("RuleIDs[%d] = %q, want %q", i, d.RuleIDs[i], id)
				}
			}
		})
	}
}

func TestExtract_FileOrder(t *testing.T) {
	t.Parallel()

	content := "// srclint:disable rule_a\ncode()\n// srclint:enable rule_a\n// srclint:disable rule_b\n"
	got := directive.Extract(parse(t, content))

	if len(got) != 3 {
		t.Fatalf("Extract returned %d directives, want 3", len(got))
	}
	for i, wantLine := range []int{1, 3, 4} {
		if got[i].AnchorLine != wantLine {
			t.Errorf("directive %d anchored at line %d, want %d", i, got[i].AnchorLine, wantLine)
		}
	}
}

func TestExtract_NilSnapshot(t *testing.T) {
	t.Parallel()

	if got := directive.Extract(nil); got != nil {
		t.Errorf("Extract(nil) = %v, want nil", got)
	}
}

func TestDirective_ResolvesTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scope    directive.Scope
		anchor   int
		wantLine int
		wantOK   bool
	}{
		{directive.ScopeThisLine, 5, 5, true},
		{directive.ScopeNextLine, 5, 6, true},
		{directive.ScopePreviousLine, 5, 4, true},
		{directive.ScopeBlanket, 5, 0, false},
	}

	for _, tt := range tests {
		d := directive.Directive{Scope: tt.scope, AnchorLine: tt.anchor}
		line, ok := d.ResolvesTo()
		if line != tt.wantLine || ok != tt.wantOK {
			t.Errorf("ResolvesTo() with scope %v = (%d, %v), want (%d, %v)",
				tt.scope, line, ok, tt.wantLine, tt.wantOK)
		}
	}
}

func TestDirective_Names(t *testing.T) {
	t.Parallel()

	d := directive.Directive{RuleIDs: []directive.RuleID{"rule_a"}}
	if !d.Names("rule_a") {
		t.Error("Names(rule_a) = false, want true")
	}
	if d.Names("rule_b") {
		t.Error("Names(rule_b) = true, want false")
	}

	wild := directive.Directive{RuleIDs: []directive.RuleID{directive.RuleIDAll}}
	if !wild.Names("anything") {
		t.Error("wildcard Names(anything) = false, want true")
	}
}
