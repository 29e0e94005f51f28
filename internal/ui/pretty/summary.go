package pretty

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/yaklabco/camelsnake/pkg/runner"
)

// RewriteHint tells the user how to apply or inspect renames.
const RewriteHint = "To rewrite files, use '--rewrite'; to echo lines, use '--format echo'"

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "1,204 renames in 12 of 40 files, 12 files rewritten, 1 file failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.Renames == 0 {
		parts = append(parts, s.Success.Render("No renames needed")+
			s.Dim.Render(fmt.Sprintf(" (%s checked)", plural(stats.FilesProcessed, "file"))))
	} else {
		parts = append(parts, fmt.Sprintf("%s %s in %s of %s",
			humanize.Comma(int64(stats.Renames)),
			english.PluralWord(stats.Renames, "rename", ""),
			humanize.Comma(int64(stats.FilesChanged)),
			plural(stats.FilesProcessed, "file"),
		))
	}

	if stats.FilesModified > 0 {
		parts = append(parts, s.Success.Render(plural(stats.FilesModified, "file")+" rewritten"))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(plural(stats.FilesSkipped, "file")+" skipped"))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(plural(stats.FilesErrored, "file")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatHint renders RewriteHint.
func (s *Styles) FormatHint() string {
	return s.Hint.Render(RewriteHint) + "\n"
}

// plural renders n with a comma separator and the matching noun form.
func plural(n int, noun string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, noun, "")
}
