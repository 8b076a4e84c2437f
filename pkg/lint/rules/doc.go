// Package rules contains the built-in srclint rules.
//
// Each rule embeds lint.BaseRule and implements lint.Rule; rules that can
// rewrite the file additionally implement lint.CorrectableRule. Rules never
// filter their own diagnostics by suppression state — the engine does that —
// but correction passes do consult it, so a suppressed range is neither
// reported nor rewritten.
package rules
