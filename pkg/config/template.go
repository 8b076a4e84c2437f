package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# srclint configuration
# See: https://github.com/yaklabco/srclint

# Default severity for all rules: error, warning, or info
# severity_default: error

# Number of parallel workers (0 = auto)
# jobs: 0

# File extensions treated as lintable source
# extensions:
#   - ".go"
#   - ".ts"

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Suppression directive handling
# suppression:
#   # Rule ids a 'disable all' wildcard never covers
#   exempt:
#     - blanket_disable

# Rule-specific configuration
# rules:
#   trailing_whitespace:
#     enabled: true
#     severity: error
#     options:
#       ignore_comments: true
#   statement_position:
#     options:
#       mode: uncuddled
`)

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# srclint configuration - Full Template
# See: https://github.com/yaklabco/srclint
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Default severity for all rules: error, warning, or info
severity_default: warning

# Show changes without applying them (requires fix: true)
dry_run: false

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Backup configuration for auto-correction
backups:
  enabled: true
  mode: sidecar

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"

# Suppression directive handling
suppression:
  exempt:
    - blanket_disable

# Rule-specific configuration
rules:
`)

	rules := getRuleInfos()

	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeRules {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if len(rule.Tags) > 0 {
			buf.WriteString(fmt.Sprintf("  # Tags: %s\n", strings.Join(rule.Tags, ", ")))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Severity))
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback to a static list of the built-in rules.
	return []RuleInfo{
		{
			ID: "blanket_disable", Name: "blanket-disable", Enabled: true, Severity: SeverityWarning,
			Description: "Suppression directives should be scoped or promptly re-enabled",
			Tags:        []string{"lint", "idiomatic"},
		},
		{
			ID: "statement_position", Name: "statement-position", Enabled: true, Severity: SeverityWarning,
			Description: "Else and catch should be placed consistently relative to the closing brace",
			Tags:        []string{"style"}, CanFix: true,
		},
		{
			ID: "trailing_whitespace", Name: "no-trailing-whitespace", Enabled: true, Severity: SeverityWarning,
			Description: "Lines should not have trailing whitespace",
			Tags:        []string{"whitespace"}, CanFix: true,
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the template configuration as JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"severity_default": "warning",
		"jobs":             0,
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore": []string{"vendor/**", "node_modules/**", ".git/**"},
		"suppression": map[string]any{
			"exempt": []string{"blanket_disable"},
		},
		"rules": rulesTemplateMap(),
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}
	return append(out, '\n'), nil
}

// rulesTemplateMap builds the per-rule section of the JSON template.
func rulesTemplateMap() map[string]any {
	rulesMap := make(map[string]any)
	for _, r := range getRuleInfos() {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}
	return rulesMap
}
