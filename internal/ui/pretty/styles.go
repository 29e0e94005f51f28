// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Per-file tally
	FilePath lipgloss.Style
	Count    lipgloss.Style

	// Echo styles
	OldLine    lipgloss.Style
	NewLine    lipgloss.Style
	CtorMarker lipgloss.Style

	// Identifier breakdown for the line command
	Identifier lipgloss.Style
	Pieces     lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style
	Hint    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// source returns a style for echoing source text. Tabs are left alone.
func source() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		OldLine:    source().Foreground(lipgloss.Color("217")),
		NewLine:    source().Foreground(lipgloss.Color("2")),
		CtorMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		Identifier: lipgloss.NewStyle().Bold(true),
		Pieces:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     source().Foreground(lipgloss.Color("10")),
		DiffRemove:  source().Foreground(lipgloss.Color("9")),
		DiffContext: source().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	text := source()
	return &Styles{
		Error:       plain,
		Warning:     plain,
		FilePath:    plain,
		Count:       plain,
		OldLine:     text,
		NewLine:     text,
		CtorMarker:  plain,
		Identifier:  plain,
		Pieces:      plain,
		DiffHeader:  plain,
		DiffHunk:    plain,
		DiffAdd:     text,
		DiffRemove:  text,
		DiffContext: text,
		Success:     plain,
		Failure:     plain,
		Hint:        plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Style is the lipgloss style type used by Styles.
type Style = lipgloss.Style
