package source_test

import (
	"testing"

	"github.com/yaklabco/srclint/pkg/source"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{"empty", "", 0},
		{"single no newline", "hello", 1},
		{"single with newline", "hello\n", 2},
		{"two lines", "a\nb\n", 3},
		{"crlf", "a\r\nb\r\n", 3},
		{"blank middle", "a\n\nb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := source.BuildLines([]byte(tt.content))
			if len(lines) != tt.wantCount {
				t.Errorf("BuildLines(%q) = %d lines, want %d", tt.content, len(lines), tt.wantCount)
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	snapshot := source.NewFileSnapshot("test.go", []byte("first\nsecond\nthird"))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 2, 1},
		{13, 3, 1},
		{17, 3, 5},
	}

	for _, tt := range tests {
		line, col := snapshot.LineAt(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}

	if line, col := snapshot.LineAt(-1); line != 0 || col != 0 {
		t.Errorf("LineAt(-1) = (%d, %d), want (0, 0)", line, col)
	}
}

func TestOffset_RoundTrip(t *testing.T) {
	t.Parallel()

	content := []byte("alpha\nbeta\ngamma\n")
	snapshot := source.NewFileSnapshot("test.go", content)

	for off := range content {
		line, col := snapshot.LineAt(off)
		back, ok := snapshot.Offset(line, col)
		if !ok || back != off {
			t.Errorf("Offset(LineAt(%d)) = (%d, %v), want (%d, true)", off, back, ok, off)
		}
	}

	if _, ok := snapshot.Offset(0, 1); ok {
		t.Error("Offset(0, 1) should fail")
	}
	if _, ok := snapshot.Offset(99, 1); ok {
		t.Error("Offset(99, 1) should fail")
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	snapshot := source.NewFileSnapshot("test.go", []byte("first\nsecond\r\nlast"))

	tests := []struct {
		line int
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "last"},
	}

	for _, tt := range tests {
		if got := string(snapshot.LineContent(tt.line)); got != tt.want {
			t.Errorf("LineContent(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}

	if got := snapshot.LineContent(0); got != nil {
		t.Errorf("LineContent(0) = %q, want nil", got)
	}
	if got := snapshot.LineContent(4); got != nil {
		t.Errorf("LineContent(4) = %q, want nil", got)
	}
}
