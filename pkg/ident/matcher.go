// Package ident locates camelCase identifiers inside a single line of C/C++
// source without parsing it.
//
// Three lexical grammars are tried in a fixed order. The leftmost match wins
// and ties go to the grammar listed first, which reproduces a single
// alternation search over the three patterns.
package ident

import (
	"fmt"
	"sync"
)

// Mode selects which grammars apply to a line.
type Mode int

const (
	// ModeNormal applies the bare and suffixed-call grammars.
	ModeNormal Mode = iota

	// ModeCtorInit additionally treats name( as a member initialization.
	// It is used for lines inside a constructor initializer list.
	ModeCtorInit
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCtorInit:
		return "ctor-init"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Pattern identifies the grammar that produced a Span.
type Pattern int

const (
	// PatternBare is a variable not followed by '(' (Pattern A).
	PatternBare Pattern = iota

	// PatternSuffixedCall is name_ immediately followed by '(' (Pattern B).
	PatternSuffixedCall

	// PatternCtorInit is name( inside an initializer list (Pattern C).
	PatternCtorInit
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternBare:
		return "bare"
	case PatternSuffixedCall:
		return "suffixed-call"
	case PatternCtorInit:
		return "ctor-init"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Span is a matched identifier within a line.
// Start and End are rune offsets forming the half-open range [Start, End).
type Span struct {
	Start   int
	End     int
	Text    string
	Pattern Pattern
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Matcher finds identifier spans using the ordered grammar list.
// A Matcher is safe for concurrent use.
type Matcher struct {
	grammars []grammar
}

// NewMatcher compiles the identifier grammars.
func NewMatcher() *Matcher {
	return &Matcher{grammars: compileGrammars()}
}

//nolint:gochecknoglobals // Compiled once and shared; Matcher is immutable.
var (
	defaultMatcher     *Matcher
	defaultMatcherOnce sync.Once
)

// Default returns a shared Matcher.
func Default() *Matcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = NewMatcher()
	})
	return defaultMatcher
}

// Find returns the leftmost identifier starting at or after rune offset from.
// Text before from is still visible to lookbehind assertions.
// The boolean is false when the rest of the line holds no identifier.
func (m *Matcher) Find(line []rune, from int, mode Mode) (Span, bool, error) {
	if from < 0 {
		from = 0
	}
	if from > len(line) {
		return Span{}, false, nil
	}

	var best Span
	found := false

	for _, g := range m.grammars {
		if g.ctorOnly && mode != ModeCtorInit {
			continue
		}

		match, err := g.re.FindRunesMatchStartingAt(line, from)
		if err != nil {
			return Span{}, false, fmt.Errorf("match %s grammar: %w", g.pattern, err)
		}
		if match == nil || match.Length == 0 {
			continue
		}

		// Strictly smaller start wins, so earlier grammars keep ties.
		if !found || match.Index < best.Start {
			best = Span{
				Start:   match.Index,
				End:     match.Index + match.Length,
				Text:    match.String(),
				Pattern: g.pattern,
			}
			found = true
		}
	}

	return best, found, nil
}

// FindString is Find over a string starting at offset 0.
func (m *Matcher) FindString(line string, mode Mode) (Span, bool, error) {
	return m.Find([]rune(line), 0, mode)
}

// FindAll returns every non-overlapping span in the line, scanning left to
// right without rewriting anything.
func (m *Matcher) FindAll(line string, mode Mode) ([]Span, error) {
	runes := []rune(line)

	var spans []Span
	from := 0
	for {
		span, ok, err := m.Find(runes, from, mode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return spans, nil
		}
		spans = append(spans, span)
		from = span.End
	}
}
