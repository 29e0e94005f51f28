package naming

import (
	"errors"
	"slices"
	"strings"
)

// minPieces is the number of pieces a camelCase identifier always has once
// the trailing underscore is set aside: a lowercase lead and one hump.
const minPieces = 2

// Rename turns split pieces into a snake_case name.
//
// The steps run in order:
//  1. A trailing underscore piece is set aside and re-appended at the end.
//  2. At least two pieces must remain.
//  3. A Hungarian marker followed by an alphabetic piece is dropped.
//  4. A boolean marker followed by an alphabetic piece is dropped when the
//     next piece is a boolean lead and replaced by the boolean prefix
//     otherwise.
//  5. A leading iterator prefix and a trailing number suffix are expanded.
//  6. Every other piece goes through the abbreviation table.
//
// The first piece of the result must be alphabetic.
func Rename(pieces []string, rules *Rules) (string, error) {
	if rules == nil {
		rules = &Rules{}
	}

	words := slices.Clone(pieces)
	trailing := false
	if len(words) > 0 && words[len(words)-1] == UnderscoreMarker {
		words = words[:len(words)-1]
		trailing = true
	}

	if len(words) < minPieces {
		return "", &MalformedIdentifierError{Pieces: pieces, Reason: "too few pieces"}
	}

	var err error
	words, err = stripHungarian(words, rules)
	if err != nil {
		return "", withPieces(err, pieces)
	}
	words = applyBoolean(words, rules)

	if !isAlpha(words[0]) {
		return "", &MalformedIdentifierError{Pieces: pieces, Reason: "leading piece is not alphabetic"}
	}

	if rules.IteratorPrefix != "" && words[0] == rules.IteratorPrefix {
		words[0] = rules.IteratorExpansion
	}
	last := len(words) - 1
	if rules.NumberSuffix != "" && words[last] == rules.NumberSuffix {
		words[last] = rules.NumberExpansion
	}

	for i, word := range words {
		words[i] = rules.expand(word)
	}

	name := strings.Join(words, "_")
	if trailing {
		name += UnderscoreMarker
	}
	return name, nil
}

// Convert splits and renames identifier in one step.
func Convert(identifier string, rules *Rules) (string, error) {
	pieces, err := Split(identifier)
	if err != nil {
		return "", err
	}

	name, err := Rename(pieces, rules)
	if err != nil {
		var malformed *MalformedIdentifierError
		if errors.As(err, &malformed) && malformed.Identifier == "" {
			malformed.Identifier = identifier
		}
		return "", err
	}
	return name, nil
}

func stripHungarian(words []string, rules *Rules) ([]string, error) {
	if !slices.Contains(rules.HungarianMarkers, words[0]) || !isAlpha(words[1]) {
		return words, nil
	}

	if len(words) == minPieces && len([]rune(words[1])) == 1 {
		if rules.ShortIdentifiers == ShortKeep {
			return words, nil
		}
		return nil, &MalformedIdentifierError{Reason: "prefix leaves a single letter"}
	}

	return words[1:], nil
}

func applyBoolean(words []string, rules *Rules) []string {
	if rules.BooleanMarker == "" || len(words) < minPieces {
		return words
	}
	if words[0] != rules.BooleanMarker || !isAlpha(words[1]) {
		return words
	}

	if slices.Contains(rules.BooleanLeads, words[1]) {
		return words[1:]
	}

	words[0] = rules.BooleanPrefix
	return words
}

func withPieces(err error, pieces []string) error {
	var malformed *MalformedIdentifierError
	if errors.As(err, &malformed) && malformed.Pieces == nil {
		malformed.Pieces = pieces
	}
	return err
}

func isAlpha(piece string) bool {
	if piece == "" {
		return false
	}
	for _, r := range piece {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
