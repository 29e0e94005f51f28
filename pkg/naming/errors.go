package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedIdentifier is returned when a matched identifier does not
// decompose into pieces that can be renamed.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// ErrProtectedAbbreviation is returned when a configured abbreviation would
// expand a protected word.
var ErrProtectedAbbreviation = errors.New("abbreviation targets a protected word")

// MalformedIdentifierError carries the identifier and the pieces it split
// into. It matches ErrMalformedIdentifier with errors.Is.
type MalformedIdentifierError struct {
	Identifier string
	Pieces     []string
	Reason     string
}

// Error implements error.
func (e *MalformedIdentifierError) Error() string {
	var sb strings.Builder
	sb.WriteString("malformed identifier")
	if e.Identifier != "" {
		fmt.Fprintf(&sb, " %q", e.Identifier)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if len(e.Pieces) > 0 {
		fmt.Fprintf(&sb, " (pieces %q)", e.Pieces)
	}
	return sb.String()
}

// Unwrap returns ErrMalformedIdentifier.
func (e *MalformedIdentifierError) Unwrap() error {
	return ErrMalformedIdentifier
}
