// Package naming splits camelCase identifiers into pieces and renders them as
// snake_case, applying prefix stripping, boolean conventions, and
// abbreviation expansion.
package naming

import (
	"fmt"
	"maps"
	"slices"
)

// UnderscoreMarker is the piece emitted for a literal underscore.
const UnderscoreMarker = "_"

// ShortPolicy controls what happens when stripping a Hungarian prefix
// would leave a single letter, as in mX.
type ShortPolicy string

const (
	// ShortError reports the identifier as malformed.
	ShortError ShortPolicy = "error"

	// ShortKeep keeps the prefix, so mX becomes m_x.
	ShortKeep ShortPolicy = "keep"
)

// Valid reports whether p is a known policy.
func (p ShortPolicy) Valid() bool {
	return p == ShortError || p == ShortKeep
}

// Rules holds the rename tables. The zero value renames nothing beyond
// lowercasing and joining; use DefaultRules for the standard tables.
type Rules struct {
	// HungarianMarkers are single-letter type prefixes dropped from the front
	// of an identifier (pCount, mValue, nItems, fScale).
	HungarianMarkers []string

	// BooleanMarker is the prefix that marks a boolean (bReady).
	BooleanMarker string

	// BooleanLeads are words that already read as a predicate. A boolean whose
	// second piece is one of them loses the marker; any other boolean gets
	// BooleanPrefix in its place.
	BooleanLeads []string

	// BooleanPrefix replaces the boolean marker.
	BooleanPrefix string

	// IteratorPrefix is a leading piece expanded to IteratorExpansion.
	IteratorPrefix    string
	IteratorExpansion string

	// NumberSuffix is a trailing piece expanded to NumberExpansion.
	NumberSuffix    string
	NumberExpansion string

	// Abbreviations maps a whole piece to its expansion.
	Abbreviations map[string]string

	// Protected words are never expanded through Abbreviations.
	Protected []string

	// ShortIdentifiers decides the mX case.
	ShortIdentifiers ShortPolicy
}

// Default tables.
//
//nolint:gochecknoglobals // Read-only tables copied by DefaultRules.
var (
	defaultHungarianMarkers = []string{"p", "m", "n", "f"}

	defaultBooleanLeads = []string{
		"is", "are", "was", "were",
		"has", "have", "had",
		"does", "do", "did", "done",
		"find", "found", "get", "got",
	}

	defaultAbbreviations = map[string]string{
		"res":  "result",
		"buf":  "buffer",
		"vec":  "vector",
		"msg":  "message",
		"seq":  "sequence",
		"cnt":  "count",
		"mem":  "memory",
		"val":  "value",
		"loc":  "location",
		"ans":  "answer",
		"ctx":  "context",
		"elem": "element",
		"ty":   "type",
	}

	defaultProtected = []string{
		"obj", "num", "it", "iter", "var", "src", "dest",
		"std", "ret", "init", "ptr", "op",
	}
)

// DefaultRules returns a fresh copy of the standard rename tables.
func DefaultRules() *Rules {
	return &Rules{
		HungarianMarkers:  slices.Clone(defaultHungarianMarkers),
		BooleanMarker:     "b",
		BooleanLeads:      slices.Clone(defaultBooleanLeads),
		BooleanPrefix:     "is",
		IteratorPrefix:    "it",
		IteratorExpansion: "iter",
		NumberSuffix:      "num",
		NumberExpansion:   "number",
		Abbreviations:     maps.Clone(defaultAbbreviations),
		Protected:         slices.Clone(defaultProtected),
		ShortIdentifiers:  ShortError,
	}
}

// Clone returns a deep copy of r.
func (r *Rules) Clone() *Rules {
	if r == nil {
		return nil
	}
	clone := *r
	clone.HungarianMarkers = slices.Clone(r.HungarianMarkers)
	clone.BooleanLeads = slices.Clone(r.BooleanLeads)
	clone.Abbreviations = maps.Clone(r.Abbreviations)
	clone.Protected = slices.Clone(r.Protected)
	return &clone
}

// AddAbbreviations merges extra into the abbreviation table. Existing keys
// are overwritten. A key that names a protected word is rejected and the
// table is left unchanged.
func (r *Rules) AddAbbreviations(extra map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(extra)) {
		if slices.Contains(r.Protected, key) {
			return fmt.Errorf("%w: %q", ErrProtectedAbbreviation, key)
		}
	}
	if r.Abbreviations == nil {
		r.Abbreviations = make(map[string]string, len(extra))
	}
	maps.Copy(r.Abbreviations, extra)
	return nil
}

// AddBooleanLeads appends words to the boolean lead list, skipping duplicates.
func (r *Rules) AddBooleanLeads(words ...string) {
	for _, word := range words {
		if !slices.Contains(r.BooleanLeads, word) {
			r.BooleanLeads = append(r.BooleanLeads, word)
		}
	}
}

// expand returns the abbreviation expansion for piece, if any.
func (r *Rules) expand(piece string) string {
	if slices.Contains(r.Protected, piece) {
		return piece
	}
	if full, ok := r.Abbreviations[piece]; ok {
		return full
	}
	return piece
}
