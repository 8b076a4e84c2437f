package source

import "sort"

// TokenKind classifies the type of a token in the source text.
type TokenKind uint16

// Token kinds cover every byte in the source. Rules mostly care about the
// first four: they distinguish code from non-code text.
const (
	TokOther TokenKind = iota
	TokKeyword
	TokString
	TokComment

	TokWhitespace
	TokNewline
	TokIdentifier
	TokNumber
	TokPunct
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokKeyword:
		return "keyword"
	case TokString:
		return "string"
	case TokComment:
		return "comment"
	case TokWhitespace:
		return "whitespace"
	case TokNewline:
		return "newline"
	case TokIdentifier:
		return "identifier"
	case TokNumber:
		return "number"
	case TokPunct:
		return "punct"
	default:
		return "other"
	}
}

// Token represents a classified span of bytes in the source.
// Tokens are contiguous and non-overlapping, covering [0, len(Content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// KindAt returns the token kind at the given byte offset.
// Returns TokOther if the snapshot has no token stream or the offset is out of range.
func (f *FileSnapshot) KindAt(offset int) TokenKind {
	tok, ok := f.TokenAt(offset)
	if !ok {
		return TokOther
	}
	return tok.Kind
}

// TokenAt returns the token covering the given byte offset.
func (f *FileSnapshot) TokenAt(offset int) (Token, bool) {
	if offset < 0 || offset >= len(f.Content) || len(f.Tokens) == 0 {
		return Token{}, false
	}

	idx := sort.Search(len(f.Tokens), func(i int) bool {
		return f.Tokens[i].EndOffset > offset
	})
	if idx >= len(f.Tokens) {
		return Token{}, false
	}

	tok := f.Tokens[idx]
	if offset < tok.StartOffset {
		return Token{}, false
	}
	return tok, true
}

// LastTokenOnLine returns the last non-whitespace token whose span starts on
// the given 1-based line. Trailing whitespace and the newline are skipped.
func (f *FileSnapshot) LastTokenOnLine(line int) (Token, bool) {
	if line < 1 || line > len(f.Lines) {
		return Token{}, false
	}

	info := f.Lines[line-1]

	// First token overlapping the line.
	idx := sort.Search(len(f.Tokens), func(i int) bool {
		return f.Tokens[i].EndOffset > info.StartOffset
	})

	var last Token
	found := false
	for ; idx < len(f.Tokens) && f.Tokens[idx].StartOffset < info.NewlineStart; idx++ {
		tok := f.Tokens[idx]
		if tok.Kind == TokWhitespace || tok.Kind == TokNewline {
			continue
		}
		last = tok
		found = true
	}

	return last, found
}

// ValidateTokens checks that a token slice is valid:
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full content range [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].StartOffset != 0 {
		return false
	}
	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
