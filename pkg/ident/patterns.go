package ident

import "github.com/dlclark/regexp2"

// Building blocks shared by the identifier grammars.
//
// The single-letter lead excludes 'k' so that constants spelled kFooBar are
// never treated as variables.
const (
	wordStart = `(\A|(?<=\W))`
	lead      = `([a-jl-z]|[a-z]{2,})`
	humps     = `([A-Z][a-z]*|[0-9]+)+`
)

// Grammar sources, in precedence order.
const (
	// bareSource matches an identifier that is not followed by an identifier
	// character or an opening parenthesis.
	bareSource = wordStart + lead + humps + `_?(?=[^\w\(]|$)`

	// suffixedCallSource matches memberName_( where the trailing underscore
	// marks a member being initialized rather than a function being called.
	suffixedCallSource = wordStart + lead + humps + `_(?=\()`

	// ctorInitSource matches name( inside a constructor initializer list:
	// at line start, after ") : ", after "), " or ": " at line start, or
	// after two whitespace characters of continuation indent.
	ctorInitSource = `(\A|(?<=\)\s:\s|\S\),\s)|(?<=\A:\s|\s\s))[a-z]+` + humps + `(?=\()`
)

// grammar is one entry of the ordered pattern list.
type grammar struct {
	pattern  Pattern
	re       *regexp2.Regexp
	ctorOnly bool
}

// compileGrammars compiles the ordered pattern list. List order is match
// precedence when two patterns start at the same offset.
func compileGrammars() []grammar {
	return []grammar{
		{pattern: PatternBare, re: regexp2.MustCompile(bareSource, regexp2.None)},
		{pattern: PatternSuffixedCall, re: regexp2.MustCompile(suffixedCallSource, regexp2.None)},
		{pattern: PatternCtorInit, re: regexp2.MustCompile(ctorInitSource, regexp2.None), ctorOnly: true},
	}
}
