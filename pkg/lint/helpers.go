package lint

import (
	"bytes"

	"github.com/yaklabco/srclint/pkg/source"
)

// Line-based helpers shared by rules.

// LineContent returns the content of the specified 1-based line number,
// excluding the newline. Returns nil if the line number is out of range.
func LineContent(file *source.FileSnapshot, lineNum int) []byte {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return nil
	}
	line := file.Lines[lineNum-1]
	return file.Content[line.StartOffset:line.NewlineStart]
}

// LineLength returns the length of the specified 1-based line (excluding newline).
// Returns 0 if the line number is out of range.
func LineLength(file *source.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return 0
	}
	line := file.Lines[lineNum-1]
	return line.NewlineStart - line.StartOffset
}

// HasTrailingWhitespace returns true if the line has trailing whitespace.
func HasTrailingWhitespace(file *source.FileSnapshot, lineNum int) bool {
	content := LineContent(file, lineNum)
	if len(content) == 0 {
		return false
	}
	last := content[len(content)-1]
	return last == ' ' || last == '\t'
}

// TrailingWhitespaceRange returns the byte range of trailing whitespace on a
// line. Returns (-1, -1) if no trailing whitespace or line is out of range.
func TrailingWhitespaceRange(file *source.FileSnapshot, lineNum int) (int, int) {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return -1, -1
	}
	line := file.Lines[lineNum-1]
	content := file.Content[line.StartOffset:line.NewlineStart]
	if len(content) == 0 {
		return -1, -1
	}

	endOffset := line.NewlineStart
	startOffset := endOffset
	for idx := len(content) - 1; idx >= 0; idx-- {
		if content[idx] != ' ' && content[idx] != '\t' {
			break
		}
		startOffset = line.StartOffset + idx
	}

	if startOffset == endOffset {
		return -1, -1
	}
	return startOffset, endOffset
}

// IsBlankLine returns true if the line contains only whitespace.
func IsBlankLine(file *source.FileSnapshot, lineNum int) bool {
	content := LineContent(file, lineNum)
	return len(bytes.TrimSpace(content)) == 0
}

// LeadingWhitespace returns the run of spaces and tabs at the start of the line.
func LeadingWhitespace(file *source.FileSnapshot, lineNum int) []byte {
	content := LineContent(file, lineNum)
	idx := 0
	for idx < len(content) && (content[idx] == ' ' || content[idx] == '\t') {
		idx++
	}
	return content[:idx]
}

// LineIsComment reports whether every non-whitespace byte of the line belongs
// to a comment token.
func LineIsComment(file *source.FileSnapshot, lineNum int) bool {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return false
	}

	line := file.Lines[lineNum-1]
	sawComment := false
	for offset := line.StartOffset; offset < line.NewlineStart; {
		tok, ok := file.TokenAt(offset)
		if !ok {
			return false
		}
		switch tok.Kind {
		case source.TokComment:
			sawComment = true
		case source.TokWhitespace, source.TokNewline:
		default:
			return false
		}
		if tok.EndOffset <= offset {
			return false
		}
		offset = tok.EndOffset
	}

	return sawComment
}

// CountBlankLinesBefore counts consecutive blank lines before a given line.
func CountBlankLinesBefore(file *source.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 2 {
		return 0
	}
	count := 0
	for ln := lineNum - 1; ln >= 1; ln-- {
		if !IsBlankLine(file, ln) {
			break
		}
		count++
	}
	return count
}

// CountBlankLinesAfter counts consecutive blank lines after a given line.
func CountBlankLinesAfter(file *source.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 1 || lineNum >= len(file.Lines) {
		return 0
	}
	count := 0
	for ln := lineNum + 1; ln <= len(file.Lines); ln++ {
		if !IsBlankLine(file, ln) {
			break
		}
		count++
	}
	return count
}
