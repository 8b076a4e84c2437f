package fix

import "sort"

// ApplyEdits applies a batch of edits against a single snapshot of content
// and returns the rewritten buffer plus the number of edits applied.
//
// Edits are processed from highest start offset to lowest. Because later
// edits are spliced first, the offsets of not-yet-applied (earlier) edits
// stay valid: they address the untouched prefix of the buffer. An edit whose
// range reaches into a region an earlier splice already rewrote is skipped.
//
// Edits whose replacement equals the original slice are applied but not
// counted: content that is already correct is not a correction.
func ApplyEdits(content []byte, edits []TextEdit) ([]byte, int) {
	if len(edits) == 0 {
		return content, 0
	}

	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].StartOffset != ordered[j].StartOffset {
			return ordered[i].StartOffset > ordered[j].StartOffset
		}
		return ordered[i].EndOffset > ordered[j].EndOffset
	})

	buf := make([]byte, len(content))
	copy(buf, content)

	applied := 0
	// floor marks the lowest original offset any splice has touched so far.
	floor := len(content)

	for _, e := range ordered {
		if e.StartOffset < 0 || e.EndOffset > len(content) || e.StartOffset > e.EndOffset {
			continue
		}
		if e.EndOffset > floor {
			// Overlaps a region already rewritten by a later-offset edit.
			continue
		}

		noop := e.IsNoop(content)

		next := make([]byte, 0, len(buf)+len(e.NewText)-(e.EndOffset-e.StartOffset))
		next = append(next, buf[:e.StartOffset]...)
		next = append(next, e.NewText...)
		next = append(next, buf[e.EndOffset:]...)
		buf = next

		floor = e.StartOffset
		if !noop {
			applied++
		}
	}

	return buf, applied
}
