// Package langdetect answers "should srclint look at this file" questions.
// It wraps go-enry's path and content heuristics so discovery can skip
// vendored trees, generated output, and binary blobs without hand-rolling
// the detection lists.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// IsVendoredPath reports whether the (slash-separated, relative) path lies in
// a vendored tree such as vendor/, node_modules/, or a minified bundle.
func IsVendoredPath(relPath string) bool {
	return enry.IsVendor(relPath)
}

// IsGeneratedFile reports whether the file looks machine-generated, either by
// path convention or by content markers (e.g. "Code generated by ... DO NOT EDIT").
func IsGeneratedFile(relPath string, content []byte) bool {
	return enry.IsGenerated(relPath, content)
}

// IsBinary reports whether the content looks like a binary blob rather than
// text. Binary files are never linted.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}

// IsDotFile reports whether the path's base name starts with a dot.
func IsDotFile(relPath string) bool {
	return enry.IsDotFile(relPath)
}

// LanguageOf returns the lowercase language name detected for the file, or
// "" when detection fails. Detection uses the filename first (extension,
// well-known names), then content strategies.
func LanguageOf(filename string, content []byte) string {
	lang := enry.GetLanguage(filename, content)
	if lang == enry.OtherLanguage {
		return ""
	}
	return strings.ToLower(lang)
}
