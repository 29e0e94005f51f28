// Package diff renders unified diffs between the original and rewritten
// content of a file.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 3

// LineKind classifies a diff line.
type LineKind int

const (
	// LineContext is an unchanged line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the rewritten content.
	LineAdd

	// LineRemove is a line present only in the original content.
	LineRemove
)

// Line is one line of a hunk, without its diff prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous group of changes with surrounding context.
// Starts are 1-based; a zero count is paired with the line before the hunk.
type Hunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// Header returns the "@@ -a,b +c,d @@" line.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Diff is the unified diff of one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Generate diffs original against modified. It returns nil when the contents
// have the same lines.
func Generate(path string, original, modified []byte) *Diff {
	before := splitLines(original)
	after := splitLines(modified)

	matcher := difflib.NewMatcher(before, after)
	groups := matcher.GetGroupedOpCodes(ContextLines)
	if len(groups) == 0 {
		return nil
	}

	result := &Diff{Path: path}
	for _, group := range groups {
		hunk := newHunk(group)
		for _, op := range group {
			switch op.Tag {
			case 'e':
				hunk.Lines = appendLines(hunk.Lines, LineContext, before[op.I1:op.I2])
			case 'd':
				hunk.Lines = appendLines(hunk.Lines, LineRemove, before[op.I1:op.I2])
				result.Deletions += op.I2 - op.I1
			case 'i':
				hunk.Lines = appendLines(hunk.Lines, LineAdd, after[op.J1:op.J2])
				result.Additions += op.J2 - op.J1
			case 'r':
				hunk.Lines = appendLines(hunk.Lines, LineRemove, before[op.I1:op.I2])
				hunk.Lines = appendLines(hunk.Lines, LineAdd, after[op.J1:op.J2])
				result.Deletions += op.I2 - op.I1
				result.Additions += op.J2 - op.J1
			}
		}
		result.Hunks = append(result.Hunks, hunk)
	}

	if len(result.Hunks) == 0 {
		return nil
	}
	return result
}

// HasChanges reports whether d holds at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the unified diff without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", path)
	fmt.Fprintf(&sb, "+++ b/%s\n", path)
	for _, hunk := range d.Hunks {
		sb.WriteString(hunk.Header())
		sb.WriteByte('\n')
		for _, line := range hunk.Lines {
			sb.WriteString(Prefix(line.Kind))
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FullString returns the git header followed by the unified diff.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// Prefix returns the unified diff marker for kind.
func Prefix(kind LineKind) string {
	switch kind {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

func newHunk(group []difflib.OpCode) Hunk {
	first, last := group[0], group[len(group)-1]

	hunk := Hunk{
		OriginalCount: last.I2 - first.I1,
		ModifiedCount: last.J2 - first.J1,
	}
	hunk.OriginalStart = rangeStart(first.I1, hunk.OriginalCount)
	hunk.ModifiedStart = rangeStart(first.J1, hunk.ModifiedCount)
	return hunk
}

// rangeStart converts a 0-based offset to the unified diff start, which
// names the preceding line when the range is empty.
func rangeStart(offset, count int) int {
	if count == 0 {
		return offset
	}
	return offset + 1
}

func appendLines(dst []Line, kind LineKind, lines []string) []Line {
	for _, content := range lines {
		dst = append(dst, Line{Kind: kind, Content: content})
	}
	return dst
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	text := strings.TrimSuffix(string(content), "\n")
	return strings.Split(text, "\n")
}
