package configloader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/naming"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	// Field is the path to the value, e.g. "abbreviations.res".
	Field   string
	Value   any
	Message string

	// FilePath is the config file holding the value, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult holds every finding of Validate.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns errors then warnings, each prefixed with its kind.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// knownBackupModes lists valid backup mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = []string{"sidecar", "none"}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.Valid() {
		result.errorf("format", cfg.Format,
			"invalid format %q; must be one of: text, echo, content, diff, json", cfg.Format)
	}
	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Backups.Mode != "" && !slices.Contains(knownBackupModes, cfg.Backups.Mode) {
		result.errorf("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}
	if cfg.ShortIdentifiers != "" && !naming.ShortPolicy(cfg.ShortIdentifiers).Valid() {
		result.errorf("short_identifiers", cfg.ShortIdentifiers,
			"invalid policy %q; must be one of: error, keep", cfg.ShortIdentifiers)
	}
	if cfg.Check && cfg.Rewrite {
		result.warnf("check", true, "check mode never writes; rewrite is ignored")
	}

	validateExtensions(cfg, result)
	validateIgnore(cfg, result)
	validateAbbreviations(cfg, result)
	validateBooleanPrefixes(cfg, result)

	return result
}

// ValidateWithFile validates cfg and tags every finding with filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

func validateExtensions(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]bool, len(cfg.Extensions))
	for i, ext := range cfg.Extensions {
		field := fmt.Sprintf("extensions[%d]", i)
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
			result.errorf(field, ext, "extension %q must look like \".cpp\"", ext)
			continue
		}
		if seen[ext] {
			result.warnf(field, ext, "duplicate extension %q", ext)
		}
		seen[ext] = true
	}
}

func validateIgnore(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
	for i, marker := range cfg.IgnoreMarkers {
		if strings.TrimSpace(marker) == "" {
			result.errorf(fmt.Sprintf("ignore_markers[%d]", i), marker, "marker must not be empty")
		}
	}
}

func validateAbbreviations(cfg *config.Config, result *ValidationResult) {
	defaults := naming.DefaultRules()

	for _, key := range slices.Sorted(maps.Keys(cfg.Abbreviations)) {
		value := cfg.Abbreviations[key]
		field := "abbreviations." + key

		switch {
		case !isWord(key):
			result.errorf(field, key, "abbreviation %q must be lowercase letters", key)
		case !isWord(value):
			result.errorf(field, value, "expansion %q must be lowercase letters", value)
		case slices.Contains(defaults.Protected, key):
			result.errorf(field, key, "%q is protected and cannot be expanded", key)
		case defaults.Abbreviations[key] != "" && defaults.Abbreviations[key] != value:
			result.warnf(field, value, "overrides built-in expansion %q", defaults.Abbreviations[key])
		}
	}
}

func validateBooleanPrefixes(cfg *config.Config, result *ValidationResult) {
	for i, word := range cfg.BooleanPrefixes {
		if !isWord(word) {
			result.errorf(fmt.Sprintf("boolean_prefixes[%d]", i), word, "%q must be lowercase letters", word)
		}
	}
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return slices.Contains(knownBackupModes, mode)
}
