package rewrite

import (
	"strings"
	"unicode"

	"github.com/yaklabco/camelsnake/pkg/ident"
)

// State records whether the scan is inside a constructor initializer list.
// Each file scan starts Outside.
type State int

const (
	// Outside is the normal state.
	Outside State = iota

	// Inside means name( is a member initialization.
	Inside
)

// String returns the state name.
func (s State) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// Mode returns the matcher mode for lines scanned in this state.
func (s State) Mode() ident.Mode {
	if s == Inside {
		return ident.ModeCtorInit
	}
	return ident.ModeNormal
}

// Markers used by the initializer list heuristic.
const (
	initColon    = ": "
	closeParen   = ") "
	ternaryMark  = " ?"
	openingBrace = " {"
)

// TrackCtorInit returns the state for line given the state after the previous
// line. prevLine is the unmodified previous line, or "" for the first line.
//
// A line enters the initializer list when it contains ": " and either the
// text before the first ": " ends in ") " with no " ?" in it, or that text is
// only whitespace and prevLine ends in ')' and holds no " ?".
func TrackCtorInit(prev State, line, prevLine string) State {
	colon := strings.Index(line, initColon)
	if colon < 0 {
		return prev
	}
	head := line[:colon]

	if strings.HasSuffix(head, closeParen) && !strings.Contains(head, ternaryMark) {
		return Inside
	}

	if strings.TrimSpace(head) == "" &&
		strings.HasSuffix(strings.TrimRightFunc(prevLine, unicode.IsSpace), ")") &&
		!strings.Contains(prevLine, ternaryMark) {
		return Inside
	}

	return prev
}

// LeaveCtorInit returns the state after line has been rewritten. A line
// containing " {" closes the initializer list.
func LeaveCtorInit(state State, line string) State {
	if state == Inside && strings.Contains(line, openingBrace) {
		return Outside
	}
	return state
}
