package config

// Template returns the commented configuration written by "camelsnake init".
func Template() []byte {
	return []byte(`# camelsnake configuration
# Settings here are merged over the built-in defaults.

# File suffixes processed when walking directories.
extensions:
  - .h
  - .cc
  - .cpp
  - .c

# Glob patterns for paths to skip.
# ignore:
#   - "generated/**"
#   - "**/*.pb.cc"

# Directories whose trees are never walked.
ignore_markers:
  - test-inputs
  - third-party
  - linters

# Follow symlinked directories while walking.
follow_symlinks: true

# Also accept files detected as C or C++ by content, whatever their suffix.
# detect_language: false

# Skip vendored paths (vendor/, node_modules/, ...).
# skip_vendor: false

# What to do with identifiers like mX whose prefix would leave one letter:
# "error" reports them, "keep" renames them to m_x.
short_identifiers: error

# Extra abbreviation expansions. Protected words (obj, num, it, iter, var,
# src, dest, std, ret, init, ptr, op) cannot be expanded.
# abbreviations:
#   cfg: config
#   idx: index

# Extra words that already read as a predicate after a b prefix.
# boolean_prefixes:
#   - can
#   - should

# Backups when rewriting files in place.
backups:
  enabled: false
  mode: sidecar
`)
}
