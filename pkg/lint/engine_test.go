package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/lint"
	"github.com/yaklabco/srclint/pkg/lint/rules"
	"github.com/yaklabco/srclint/pkg/source"
)

func newTestEngine() *lint.Engine {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return lint.NewEngine(source.NewTokenizer(), registry)
}

func TestEngine_LintFile(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	cfg := config.NewConfig()

	result, err := engine.LintFile(context.Background(), "test.go", []byte("let x = 1   \n"), cfg)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	if !result.HasIssues() {
		t.Fatal("expected at least one diagnostic")
	}
	d := result.Diagnostics[0]
	if d.RuleID != "trailing_whitespace" {
		t.Errorf("RuleID = %q, want trailing_whitespace", d.RuleID)
	}
	if d.FilePath != "test.go" {
		t.Errorf("FilePath = %q, want test.go", d.FilePath)
	}
	if d.RuleName != "no-trailing-whitespace" {
		t.Errorf("RuleName = %q, want no-trailing-whitespace", d.RuleName)
	}
	if d.Severity != config.SeverityWarning {
		t.Errorf("Severity = %q, want warning", d.Severity)
	}
}

func TestEngine_LintFile_CleanContent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	result, err := engine.LintFile(context.Background(), "test.go", []byte("let x = 1\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}
	if result.HasIssues() {
		t.Errorf("expected no diagnostics, got %v", result.Diagnostics)
	}
}

func TestEngine_LintFile_SuppressionFilter(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	content := []byte("// srclint:disable trailing_whitespace\nbad  \n// srclint:enable trailing_whitespace\nworse  \n")

	result, err := engine.LintFile(context.Background(), "test.go", content, config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	var lines []int
	for _, d := range result.Diagnostics {
		if d.RuleID == "trailing_whitespace" {
			lines = append(lines, d.StartLine)
		}
	}
	if len(lines) != 1 || lines[0] != 4 {
		t.Errorf("trailing_whitespace diagnostics at lines %v, want [4]", lines)
	}
	if result.SuppressedCount == 0 {
		t.Error("SuppressedCount should record the dropped diagnostic")
	}
}

func TestEngine_LintFile_DiagnosticsSorted(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	content := []byte("b  \na  \n}\nelse {\n}\n")

	result, err := engine.LintFile(context.Background(), "test.go", content, config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	for i := 1; i < len(result.Diagnostics); i++ {
		prev, cur := result.Diagnostics[i-1], result.Diagnostics[i]
		if prev.StartLine > cur.StartLine {
			t.Fatalf("diagnostics out of order: line %d before line %d", prev.StartLine, cur.StartLine)
		}
	}
}

func TestEngine_LintFile_RuleErrorIsNotFatal(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	registry.Register(&failingRule{})

	engine := lint.NewEngine(source.NewTokenizer(), registry)

	result, err := engine.LintFile(context.Background(), "test.go", []byte("bad  \n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}
	if result.RuleErrors["failing_rule"] == nil {
		t.Error("failing rule's error should be recorded")
	}
	if !result.HasIssues() {
		t.Error("other rules should still produce diagnostics")
	}
}

func TestEngine_FixFile(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	cfg := config.NewConfig()
	cfg.Fix = true

	content := []byte("bad  \n}\nelse {\n}\n")
	fixed, applied, err := engine.FixFile(context.Background(), "test.go", content, cfg)
	if err != nil {
		t.Fatalf("FixFile: %v", err)
	}

	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	want := "bad\n} else {\n}\n"
	if string(fixed) != want {
		t.Errorf("FixFile = %q, want %q", fixed, want)
	}
}

func TestEngine_FixFile_NothingToFix(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	cfg := config.NewConfig()
	cfg.Fix = true

	content := []byte("clean\n")
	fixed, applied, err := engine.FixFile(context.Background(), "test.go", content, cfg)
	if err != nil {
		t.Fatalf("FixFile: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
	if string(fixed) != string(content) {
		t.Errorf("content changed: %q", fixed)
	}
}

func TestEngine_FixFile_RespectsFixRulesFilter(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.FixRules = []string{"statement_position"}

	content := []byte("bad  \n}\nelse {\n}\n")
	fixed, applied, err := engine.FixFile(context.Background(), "test.go", content, cfg)
	if err != nil {
		t.Fatalf("FixFile: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	want := "bad  \n} else {\n}\n"
	if string(fixed) != want {
		t.Errorf("FixFile = %q, want %q", fixed, want)
	}
}

// failingRule always errors; used to verify rule-error isolation.
type failingRule struct {
	lint.BaseRule
}

func (r *failingRule) ID() string   { return "failing_rule" }
func (r *failingRule) Name() string { return "failing-rule" }
func (r *failingRule) Apply(_ *lint.RuleContext) ([]lint.Diagnostic, error) {
	return nil, errors.New("boom")
}
