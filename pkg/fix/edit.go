// Package fix provides text edit types and application logic for auto-fixing.
//
// A batch of edits is always expressed against one immutable snapshot of the
// original content and applied in a single pass; edits are never re-applied
// to a buffer another pass may still be rewriting.
package fix

// TextEdit represents a single text replacement in a file.
// Offsets always address the original content the edit was computed from.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsNoop reports whether applying the edit would leave content unchanged.
func (e TextEdit) IsNoop(content []byte) bool {
	if e.StartOffset < 0 || e.EndOffset > len(content) || e.StartOffset > e.EndOffset {
		return false
	}
	return string(content[e.StartOffset:e.EndOffset]) == e.NewText
}

// EditBuilder accumulates text edits for a file.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}
