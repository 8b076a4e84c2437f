package rules

import (
	"github.com/yaklabco/srclint/pkg/config"
	"github.com/yaklabco/srclint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewTrailingWhitespaceRule())
	registry.Register(NewStatementPositionRule())
	registry.Register(NewBlanketDisableRule())
}

// init registers all built-in rules with the default registry and wires
// rule metadata into config template generation.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = ruleInfos
}

// ruleInfos exposes registered rule metadata to the config package.
func ruleInfos() []config.RuleInfo {
	registered := lint.DefaultRegistry.Rules()
	infos := make([]config.RuleInfo, 0, len(registered))
	for _, rule := range registered {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severity:    rule.DefaultSeverity(),
			Tags:        rule.Tags(),
			CanFix:      rule.CanFix(),
		})
	}
	return infos
}
