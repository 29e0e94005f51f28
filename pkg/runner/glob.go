package runner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// globSet is a compiled list of exclude patterns.
type globSet struct {
	full []glob.Glob

	// base holds patterns without a slash, also tried against the base name.
	base []glob.Glob
}

func compileGlobs(patterns []string) (globSet, error) {
	var set globSet
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(path.Clean(filepath.ToSlash(pattern)), "./")

		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return globSet{}, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		set.full = append(set.full, g)
		if !strings.Contains(pattern, "/") {
			set.base = append(set.base, g)
		}
	}
	return set, nil
}

// matchFile reports whether a slash-separated relative file path is excluded.
func (s globSet) matchFile(rel string) bool {
	for _, g := range s.full {
		if g.Match(rel) {
			return true
		}
	}
	name := path.Base(rel)
	for _, g := range s.base {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// matchDir reports whether a directory is excluded; "gen/**" excludes "gen".
func (s globSet) matchDir(rel string) bool {
	return s.matchFile(rel) || s.matchFile(rel+"/")
}
