package pipeline

import (
	"strings"
	"unicode"
)

// SplitLines splits content on "\n" and strips trailing whitespace from each
// line. A final newline does not produce an extra empty line.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return lines
}

// JoinLines joins lines with "\n" and terminates the last one.
func JoinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
