package directive

import "sort"

// Tracker answers point-in-time suppression queries for one file.
//
// It folds the ordered directive list exactly once at construction,
// materializing a blanket-state snapshot after each blanket directive.
// Scoped directives never enter blanket state; they are indexed by the single
// line they resolve to and evaluated independently per query.
type Tracker struct {
	directives []Directive
	lineCount  int

	// frames holds cumulative blanket-disabled snapshots in file order.
	frames []blanketFrame

	// scoped maps a resolved line number to the scoped directives hitting it.
	scoped map[int][]Directive
}

// blanketFrame is the blanket-disabled set as of a directive's anchor line.
type blanketFrame struct {
	line     int
	disabled map[RuleID]struct{}
}

// NewTracker builds a Tracker from the file's ordered directives.
//
// known is the full catalog of rule identifiers, used to expand the "all"
// wildcard in blanket disables. alwaysExempt holds identifiers that must never
// be silenced by a wildcard; an explicit disable of an exempt id still works.
// lineCount bounds directive anchors: a directive anchored outside the file
// is a no-op rather than an error.
func NewTracker(directives []Directive, known []RuleID, alwaysExempt []RuleID, lineCount int) *Tracker {
	t := &Tracker{
		directives: directives,
		lineCount:  lineCount,
		scoped:     make(map[int][]Directive),
	}

	exempt := make(map[RuleID]struct{}, len(alwaysExempt))
	for _, id := range alwaysExempt {
		exempt[id] = struct{}{}
	}

	current := map[RuleID]struct{}{}

	for _, d := range directives {
		if d.AnchorLine < 1 || d.AnchorLine > lineCount {
			continue
		}

		if line, scoped := d.ResolvesTo(); scoped {
			t.scoped[line] = append(t.scoped[line], d)
			continue
		}

		next := make(map[RuleID]struct{}, len(current))
		for id := range current {
			next[id] = struct{}{}
		}

		switch d.Action {
		case ActionDisable:
			for _, id := range d.RuleIDs {
				if id.IsAll() {
					for _, k := range known {
						if _, ok := exempt[k]; ok {
							continue
						}
						next[k] = struct{}{}
					}
					continue
				}
				next[id] = struct{}{}
			}
		case ActionEnable:
			for _, id := range d.RuleIDs {
				if id.IsAll() {
					next = map[RuleID]struct{}{}
					break
				}
				delete(next, id)
			}
		}

		current = next
		t.frames = append(t.frames, blanketFrame{line: d.AnchorLine, disabled: next})
	}

	return t
}

// Directives returns the ordered directive list the tracker was built from.
func (t *Tracker) Directives() []Directive {
	return t.directives
}

// IsSuppressed reports whether the rule must not fire at the given 1-based
// line: either it is blanket-disabled as of the last blanket directive at or
// before the line, or a scoped directive naming it resolves to the line.
func (t *Tracker) IsSuppressed(rule RuleID, line int) bool {
	if t == nil || line < 1 {
		return false
	}

	if t.blanketDisabledAt(rule, line) {
		return true
	}

	for _, d := range t.scoped[line] {
		if d.Action == ActionDisable && d.Names(rule) {
			return true
		}
	}

	return false
}

// blanketDisabledAt checks blanket state as of the given line.
func (t *Tracker) blanketDisabledAt(rule RuleID, line int) bool {
	if len(t.frames) == 0 {
		return false
	}

	// Last frame with frame.line <= line.
	idx := sort.Search(len(t.frames), func(i int) bool {
		return t.frames[i].line > line
	})
	if idx == 0 {
		return false
	}

	disabled := t.frames[idx-1].disabled
	if _, ok := disabled[rule]; ok {
		return true
	}
	_, ok := disabled[RuleIDAll]
	return ok
}
