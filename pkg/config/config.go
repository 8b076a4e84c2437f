// Package config defines core configuration types for srclint.
// These types are pure data structures with no dependency on any loader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// SuppressionConfig controls how suppression directives are interpreted.
type SuppressionConfig struct {
	// Exempt lists rule identifiers that a "disable all" wildcard never
	// covers. An explicit disable of an exempt rule still works; only the
	// wildcard expansion skips these.
	Exempt []string `yaml:"exempt"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	// RuleFormatName renders the human-readable rule name.
	RuleFormatName RuleFormat = "name"

	// RuleFormatID renders the canonical rule ID.
	RuleFormatID RuleFormat = "id"

	// RuleFormatCombined renders "id/name".
	RuleFormatCombined RuleFormat = "combined"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules lists the per-rule table first.
	SummaryOrderRules SummaryOrder = "rules"

	// SummaryOrderFiles lists the per-file table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// Config is the root configuration structure for srclint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Suppression configures directive interpretation.
	Suppression SuppressionConfig `yaml:"suppression"`

	// Extensions lists the file extensions treated as lintable source.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"rule_format"`

	// Jobs specifies the number of parallel workers (0 = NumCPU).
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Suppression: SuppressionConfig{
			Exempt: []string{"blanket_disable"},
		},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
	}
}
