package fix

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines shown around changes.
const diffContext = 3

// Diff is a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// DiffHunk is a single unified-diff hunk.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is one line of a hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if the contents are line-identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	orig := toLines(original)
	mod := toLines(modified)

	ops := diffOps(orig, mod)
	changed := false
	for _, op := range ops {
		if op.kind != DiffLineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: buildHunks(ops)}
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case DiffLineContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case DiffLineAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case DiffLineRemove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}

	return b.String()
}

func toLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type lineOp struct {
	kind    DiffLineKind
	content string
}

// diffOps produces the full edit script via a longest-common-subsequence table.
func diffOps(orig, mod []string) []lineOp {
	n, m := len(orig), len(mod)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var ops []lineOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, lineOp{DiffLineContext, orig[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			ops = append(ops, lineOp{DiffLineRemove, orig[i]})
			i++
		default:
			ops = append(ops, lineOp{DiffLineAdd, mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, lineOp{DiffLineRemove, orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, lineOp{DiffLineAdd, mod[j]})
	}

	return ops
}

// buildHunks groups the edit script into hunks with surrounding context.
func buildHunks(ops []lineOp) []DiffHunk {
	// Indices of changed ops.
	var changes []int
	for idx, op := range ops {
		if op.kind != DiffLineContext {
			changes = append(changes, idx)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []DiffHunk
	start := changes[0]

	for ci := 0; ci < len(changes); {
		// Extend this hunk while the gap between changes stays within
		// twice the context window.
		end := changes[ci]
		for ci+1 < len(changes) && changes[ci+1]-changes[ci] <= diffContext*2 {
			ci++
			end = changes[ci]
		}

		from := max(0, start-diffContext)
		to := min(len(ops), end+diffContext+1)

		hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
		for idx := range from {
			if ops[idx].kind != DiffLineAdd {
				hunk.OriginalStart++
			}
			if ops[idx].kind != DiffLineRemove {
				hunk.ModifiedStart++
			}
		}
		for idx := from; idx < to; idx++ {
			op := ops[idx]
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
			switch op.kind {
			case DiffLineContext:
				hunk.OriginalCount++
				hunk.ModifiedCount++
			case DiffLineRemove:
				hunk.OriginalCount++
			case DiffLineAdd:
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)

		ci++
		if ci < len(changes) {
			start = changes[ci]
		}
	}

	return hunks
}
