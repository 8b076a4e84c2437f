package source

import (
	"context"
	"fmt"
)

// keywords is the set of identifiers classified as TokKeyword.
// It covers the C-family control keywords shared by the languages srclint
// scans; rules only ever test membership, never language identity.
var keywords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "defer": {}, "do": {}, "else": {},
	"enum": {}, "finally": {}, "for": {}, "func": {}, "function": {},
	"guard": {}, "if": {}, "import": {}, "interface": {}, "let": {},
	"package": {}, "return": {}, "struct": {}, "switch": {}, "throw": {},
	"try": {}, "type": {}, "var": {}, "while": {},
}

// IsKeyword reports whether the given word is in the keyword set.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Tokenizer classifies source text into a token stream.
// The zero value is ready to use.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Parse builds a FileSnapshot with a full token stream for the content.
// Every byte of the content is covered by exactly one token.
func (t *Tokenizer) Parse(ctx context.Context, path string, content []byte) (*FileSnapshot, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("tokenize: %w", ctx.Err())
	default:
	}

	snapshot := NewFileSnapshot(path, content)
	snapshot.Tokens = tokenize(content)
	return snapshot, nil
}

// tokenize performs a single forward pass over the content.
func tokenize(content []byte) []Token {
	var tokens []Token
	pos := 0

	emit := func(kind TokenKind, end int) {
		if end > pos {
			tokens = append(tokens, Token{Kind: kind, StartOffset: pos, EndOffset: end})
			pos = end
		}
	}

	for pos < len(content) {
		c := content[pos]

		switch {
		case c == '\n':
			emit(TokNewline, pos+1)
		case c == '\r':
			end := pos + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			emit(TokNewline, end)
		case c == ' ' || c == '\t':
			end := pos
			for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
				end++
			}
			emit(TokWhitespace, end)
		case c == '/' && pos+1 < len(content) && content[pos+1] == '/':
			emit(TokComment, scanLineComment(content, pos))
		case c == '#':
			emit(TokComment, scanLineComment(content, pos))
		case c == '/' && pos+1 < len(content) && content[pos+1] == '*':
			emit(TokComment, scanBlockComment(content, pos))
		case c == '"' || c == '\'':
			emit(TokString, scanQuoted(content, pos, c))
		case c == '`':
			emit(TokString, scanRaw(content, pos))
		case isIdentStart(c):
			end := pos
			for end < len(content) && isIdentPart(content[end]) {
				end++
			}
			word := string(content[pos:end])
			if IsKeyword(word) {
				emit(TokKeyword, end)
			} else {
				emit(TokIdentifier, end)
			}
		case c >= '0' && c <= '9':
			end := pos
			for end < len(content) && isNumberPart(content[end]) {
				end++
			}
			emit(TokNumber, end)
		case isPunct(c):
			emit(TokPunct, pos+1)
		default:
			emit(TokOther, pos+1)
		}
	}

	return tokens
}

// scanLineComment returns the end offset of a line comment starting at pos.
// The trailing newline is not part of the comment.
func scanLineComment(content []byte, pos int) int {
	end := pos
	for end < len(content) && content[end] != '\n' {
		end++
	}
	// Exclude a CR belonging to a CRLF terminator.
	if end > pos && content[end-1] == '\r' {
		end--
	}
	return end
}

// scanBlockComment returns the end offset of a /* */ comment starting at pos.
// An unterminated comment extends to end of content.
func scanBlockComment(content []byte, pos int) int {
	end := pos + 2
	for end+1 < len(content) {
		if content[end] == '*' && content[end+1] == '/' {
			return end + 2
		}
		end++
	}
	return len(content)
}

// scanQuoted returns the end offset of a quoted string literal starting at pos.
// Backslash escapes are honored. An unterminated literal ends at the newline
// (string literals do not span lines) or end of content.
func scanQuoted(content []byte, pos int, quote byte) int {
	end := pos + 1
	for end < len(content) {
		switch content[end] {
		case '\\':
			end += 2
			continue
		case quote:
			return end + 1
		case '\n':
			return end
		}
		end++
	}
	return len(content)
}

// scanRaw returns the end offset of a backtick-delimited raw literal, which
// may span lines. An unterminated literal extends to end of content.
func scanRaw(content []byte, pos int) int {
	end := pos + 1
	for end < len(content) {
		if content[end] == '`' {
			return end + 1
		}
		end++
	}
	return len(content)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isNumberPart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '_' ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == 'x' || c == 'X'
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '[', ']', ';', ',', '.', ':', '=', '+', '-',
		'*', '/', '%', '<', '>', '!', '&', '|', '^', '~', '?', '@':
		return true
	}
	return false
}
