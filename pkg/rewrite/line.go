// Package rewrite applies identifier renames to lines of C/C++ source.
//
// An Engine finds identifiers with an ident.Matcher, renames each with
// naming.Convert, and splices the result back into the line. RewriteLines
// threads the constructor initializer list state through a whole file.
package rewrite

import (
	"fmt"
	"slices"

	"github.com/yaklabco/camelsnake/pkg/ident"
	"github.com/yaklabco/camelsnake/pkg/naming"
)

// MaxRewritesPerLine bounds the number of renames applied to one line.
const MaxRewritesPerLine = 16

// Rename is one identifier replacement.
type Rename struct {
	Old string
	New string

	// Column is the 0-based rune offset of the replacement in the rewritten line.
	Column  int
	Pattern ident.Pattern
}

// LineResult is the outcome of rewriting one line.
type LineResult struct {
	// Original is the input line.
	Original string

	// Text is the rewritten line.
	Text    string
	Count   int
	Mode    ident.Mode
	Renames []Rename
}

// Changed reports whether any identifier was renamed.
func (r LineResult) Changed() bool {
	return r.Count > 0
}

// Engine rewrites lines using a matcher and rename rules.
// An Engine is safe for concurrent use as long as its Rules are not mutated.
type Engine struct {
	matcher *ident.Matcher
	rules   *naming.Rules
	limit   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMatcher sets the matcher. The default is ident.Default().
func WithMatcher(m *ident.Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithLimit overrides MaxRewritesPerLine. Non-positive values are ignored.
func WithLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// NewEngine returns an Engine using rules. A nil rules means naming.DefaultRules().
func NewEngine(rules *naming.Rules, opts ...Option) *Engine {
	if rules == nil {
		rules = naming.DefaultRules()
	}
	engine := &Engine{
		matcher: ident.Default(),
		rules:   rules,
		limit:   MaxRewritesPerLine,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Rules returns the engine's rename rules.
func (e *Engine) Rules() *naming.Rules {
	return e.rules
}

// RewriteLine renames every identifier in line.
//
// Each search resumes right after the previous replacement so renamed text
// is never scanned again, while lookbehind assertions still see it. Finding
// more identifiers than the limit fails with an *IterationBoundError.
func (e *Engine) RewriteLine(line string, mode ident.Mode) (LineResult, error) {
	result := LineResult{Original: line, Mode: mode}
	runes := []rune(line)
	from := 0

	for {
		span, ok, err := e.matcher.Find(runes, from, mode)
		if err != nil {
			return LineResult{}, fmt.Errorf("find identifier: %w", err)
		}
		if !ok {
			break
		}
		if result.Count == e.limit {
			return LineResult{}, &IterationBoundError{Line: line, Limit: e.limit}
		}

		renamed, err := naming.Convert(span.Text, e.rules)
		if err != nil {
			return LineResult{}, err
		}

		replacement := []rune(renamed)
		runes = slices.Concat(runes[:span.Start], replacement, runes[span.End:])

		result.Renames = append(result.Renames, Rename{
			Old:     span.Text,
			New:     renamed,
			Column:  span.Start,
			Pattern: span.Pattern,
		})
		result.Count++
		from = span.Start + len(replacement)
	}

	result.Text = string(runes)
	return result, nil
}
