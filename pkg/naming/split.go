package naming

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// pieceSource splits an identifier into capitalized words, lowercase runs,
// acronyms (an uppercase run ending before another uppercase letter, a digit,
// an underscore, or the end), digit runs, and literal underscores.
const pieceSource = `[A-Z]?[a-z]+|[A-Z]+(?=[A-Z]|[0-9]|_|$)|[0-9]+|_`

//nolint:gochecknoglobals // Compiled once; regexp2.Regexp is safe for concurrent use.
var piecePattern = regexp2.MustCompile(pieceSource, regexp2.None)

// Split breaks an identifier into lowercase pieces. A literal underscore is
// kept as UnderscoreMarker. Characters that belong to no piece are dropped.
//
// Split fails if the identifier yields no alphanumeric piece.
func Split(identifier string) ([]string, error) {
	var pieces []string

	match, err := piecePattern.FindStringMatch(identifier)
	for match != nil && err == nil {
		piece := match.String()
		if piece != UnderscoreMarker {
			piece = strings.ToLower(piece)
		}
		pieces = append(pieces, piece)

		match, err = piecePattern.FindNextMatch(match)
	}
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", identifier, err)
	}

	for _, piece := range pieces {
		if piece != UnderscoreMarker {
			return pieces, nil
		}
	}

	return nil, &MalformedIdentifierError{
		Identifier: identifier,
		Pieces:     pieces,
		Reason:     "no word pieces",
	}
}
