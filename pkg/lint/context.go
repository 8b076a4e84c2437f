package lint

import (
	"context"

	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/directive"
	"github.com/yaklabco/srclint/pkg/source"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext stores context.Context as a field (Ctx) rather than passing it
// as a method parameter. It is a short-lived parameter object created per
// rule invocation; the design keeps the Rule interface to a single Apply
// method while still supporting cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the tokenized snapshot of the file being linted.
	File *source.FileSnapshot

	// Directives is the ordered list of suppression directives in the file.
	Directives []directive.Directive

	// Suppression answers "is rule R suppressed at line L" for this file.
	Suppression *directive.Tracker

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *source.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Suppressed reports whether the given rule is suppressed at the 1-based line.
func (rc *RuleContext) Suppressed(ruleID string, line int) bool {
	if rc.Suppression == nil {
		return false
	}
	return rc.Suppression.IsSuppressed(directive.NewRuleID(ruleID), line)
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML parsing.
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
