package lint

import (
	"context"

	"github.com/yaklabco/srclint/pkg/source"
)

// Parser turns raw source bytes into a classified FileSnapshot.
//
// The lint package defines this interface in the consumer package;
// source.Tokenizer is the default implementation.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw bytes into a fully-populated FileSnapshot.
	// The returned snapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - source.ValidateTokens(snapshot.Tokens, len(content)) == true
	Parse(ctx context.Context, path string, content []byte) (*source.FileSnapshot, error)
}
