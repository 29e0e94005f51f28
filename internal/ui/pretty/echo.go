package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/camelsnake/pkg/ident"
)

// FormatEcho renders one processed line as a "-" line with the original and
// a "+" line with the result. The marker column holds '#' when the line was
// processed in constructor-initializer mode.
func (s *Styles) FormatEcho(original, rewritten string, mode ident.Mode) string {
	marker := " "
	if mode == ident.ModeCtorInit {
		marker = s.CtorMarker.Render("#")
	}

	var builder strings.Builder
	builder.WriteString("-" + marker + "|" + s.OldLine.Render(original) + "\n")
	builder.WriteString("+" + marker + "|" + s.NewLine.Render(rewritten) + "\n")
	return builder.String()
}

// FormatPieces renders an identifier and its pieces, padded so arrows line up.
func (s *Styles) FormatPieces(identifier string, pieces []string) string {
	padded := fmt.Sprintf("%-15s", identifier)
	return s.Identifier.Render(padded) + " => " + s.Pieces.Render(fmt.Sprint(pieces))
}

// FormatFileCount renders the per-file tally "path count: N".
func (s *Styles) FormatFileCount(path string, count int) string {
	return s.FilePath.Render(path) + " count: " + s.Count.Render(fmt.Sprint(count))
}
