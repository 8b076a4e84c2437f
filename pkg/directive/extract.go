package directive

import (
	"strings"

	"github.com/yaklabco/srclint/pkg/source"
)

// Marker is the comment prefix introducing a suppression directive.
const Marker = "srclint:"

// Extract scans the snapshot's comment tokens for suppression directives and
// returns them in file order. Comments that carry the marker but name no rule
// identifiers are skipped: a Directive always has a non-empty identifier list.
func Extract(file *source.FileSnapshot) []Directive {
	if file == nil || len(file.Tokens) == 0 {
		return nil
	}

	var directives []Directive

	for _, tok := range file.Tokens {
		if tok.Kind != source.TokComment {
			continue
		}

		text := string(tok.Text(file.Content))
		rel := strings.Index(text, Marker)
		if rel < 0 {
			continue
		}

		d, ok := parseDirective(text[rel+len(Marker):])
		if !ok {
			continue
		}

		line, _ := file.LineAt(tok.StartOffset)
		d.AnchorLine = line
		d.Start = tok.StartOffset
		d.End = tok.EndOffset
		directives = append(directives, d)
	}

	return directives
}

// parseDirective parses the text after the marker: an action keyword with an
// optional scope modifier, then a whitespace-separated identifier list.
//
//	disable rule_a rule_b
//	disable:next rule_a
//	enable all
func parseDirective(rest string) (Directive, bool) {
	// Strip a block comment terminator if the directive sits in one.
	if idx := strings.Index(rest, "*/"); idx >= 0 {
		rest = rest[:idx]
	}

	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return Directive{}, false
	}

	var d Directive

	command, modifier, hasModifier := strings.Cut(fields[0], ":")
	switch command {
	case "disable":
		d.Action = ActionDisable
	case "enable":
		d.Action = ActionEnable
	default:
		return Directive{}, false
	}

	if hasModifier {
		switch modifier {
		case "this":
			d.Scope = ScopeThisLine
		case "next":
			d.Scope = ScopeNextLine
		case "previous":
			d.Scope = ScopePreviousLine
		default:
			return Directive{}, false
		}
	}

	for _, field := range fields[1:] {
		id := NewRuleID(field)
		if id == "" {
			continue
		}
		d.RuleIDs = append(d.RuleIDs, id)
	}
	if len(d.RuleIDs) == 0 {
		return Directive{}, false
	}

	return d, true
}
