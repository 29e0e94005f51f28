package reporter

import (
	"fmt"
	"strings"

	"github.com/yaklabco/camelsnake/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = Format(config.FormatText)
	FormatEcho    Format = Format(config.FormatEcho)
	FormatContent Format = Format(config.FormatContent)
	FormatDiff    Format = Format(config.FormatDiff)
	FormatJSON    Format = Format(config.FormatJSON)
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		names := make([]string, 0, len(config.Formats()))
		for _, f := range config.Formats() {
			names = append(names, string(f))
		}
		return "", fmt.Errorf("unknown format %q; valid formats: %s", formatStr, strings.Join(names, ", "))
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return config.OutputFormat(f).Valid()
}
