// Package langdetect decides whether a file holds C or C++ source using
// go-enry, for trees whose sources do not all carry the usual suffixes.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Languages treated as C family.
const (
	LangC   = "C"
	LangCPP = "C++"
)

// classifierCandidates bound the content classifier for suffix-less files.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{LangC, LangCPP, "Shell", "Python", "Makefile", "Text"}

// Detect returns the go-enry language name for path, or "" if unknown.
func Detect(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

// IsCFamily reports whether path holds C or C++ source.
//
// An unambiguous extension decides on its own. An ambiguous one, such as .h,
// is resolved with content heuristics. Files without a known extension are
// judged by modeline, then by the classifier when it is confident.
func IsCFamily(path string, content []byte) bool {
	if len(content) > 0 && enry.IsBinary(content) {
		return false
	}

	name := filepath.Base(path)
	if lang, safe := enry.GetLanguageByExtension(name); lang != "" {
		if safe {
			return isCFamily(lang)
		}
		return isCFamily(enry.GetLanguage(name, content))
	}

	if lang, safe := enry.GetLanguageByModeline(content); safe {
		return isCFamily(lang)
	}

	lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates)
	return safe && isCFamily(lang)
}

// IsVendor reports whether path looks vendored (vendor/, node_modules/,
// third_party/ and similar).
func IsVendor(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

func isCFamily(lang string) bool {
	return lang == LangC || lang == LangCPP
}
