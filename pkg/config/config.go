// Package config defines the configuration of camelsnake. The types are
// plain data; loading and merging live in internal/configloader.
package config

import (
	"fmt"
	"slices"

	"github.com/yaklabco/camelsnake/pkg/naming"
)

// BackupsConfig controls backups when rewriting files.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty"` // "sidecar" or "none"
}

// OutputFormat selects a reporter.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatEcho    OutputFormat = "echo"
	FormatContent OutputFormat = "content"
	FormatDiff    OutputFormat = "diff"
	FormatJSON    OutputFormat = "json"
)

// Formats lists the accepted output formats.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatEcho, FormatContent, FormatDiff, FormatJSON}
}

// Valid reports whether f names a known format.
func (f OutputFormat) Valid() bool {
	return slices.Contains(Formats(), f)
}

// Default values.
//
//nolint:gochecknoglobals // Read-only defaults copied by NewConfig.
var (
	DefaultExtensions    = []string{".h", ".cc", ".cpp", ".c"}
	DefaultIgnoreMarkers = []string{"test-inputs", "third-party", "linters"}
)

// Config is the root configuration.
//
// Pointer fields distinguish "unset" from false so that a later layer can
// turn a setting off.
type Config struct {
	// Extensions are the file suffixes processed when walking directories.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore holds glob patterns for paths to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// IgnoreMarkers are directory names whose trees are never walked.
	IgnoreMarkers []string `yaml:"ignore_markers,omitempty"`

	FollowSymlinks *bool `yaml:"follow_symlinks,omitempty"`

	// DetectLanguage also accepts files go-enry classifies as C or C++.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`

	// SkipVendor skips paths go-enry classifies as vendored.
	SkipVendor *bool `yaml:"skip_vendor,omitempty"`

	// ShortIdentifiers is "error" or "keep"; see naming.ShortPolicy.
	ShortIdentifiers string `yaml:"short_identifiers,omitempty"`

	// Abbreviations adds or overrides abbreviation expansions.
	Abbreviations map[string]string `yaml:"abbreviations,omitempty"`

	// BooleanPrefixes adds boolean lead words.
	BooleanPrefixes []string `yaml:"boolean_prefixes,omitempty"`

	Backups BackupsConfig `yaml:"backups,omitempty"`

	// CLI-level options (not persisted to config files).

	// Rewrite writes renamed content back to the files.
	Rewrite bool `yaml:"-"`

	// DryRun shows what would be rewritten without writing.
	DryRun bool `yaml:"-"`

	// Check fails when any file would change.
	Check bool `yaml:"-"`

	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	NoBackups bool `yaml:"-"`
	Progress  bool `yaml:"-"`
}

// NewConfig returns a Config holding the defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:       slices.Clone(DefaultExtensions),
		IgnoreMarkers:    slices.Clone(DefaultIgnoreMarkers),
		FollowSymlinks:   Bool(true),
		DetectLanguage:   Bool(false),
		SkipVendor:       Bool(false),
		ShortIdentifiers: string(naming.ShortError),
		Abbreviations:    make(map[string]string),
		Backups: BackupsConfig{
			Enabled: Bool(false),
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

func boolValue(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// FollowsSymlinks reports whether directory walks follow symlinks.
func (c *Config) FollowsSymlinks() bool {
	return boolValue(c.FollowSymlinks, true)
}

// DetectsLanguage reports whether content-based language detection is on.
func (c *Config) DetectsLanguage() bool {
	return boolValue(c.DetectLanguage, false)
}

// SkipsVendor reports whether vendored paths are skipped.
func (c *Config) SkipsVendor() bool {
	return boolValue(c.SkipVendor, false)
}

// BackupsEnabled reports whether backups are written, honoring NoBackups.
func (c *Config) BackupsEnabled() bool {
	return boolValue(c.Backups.Enabled, false) && !c.NoBackups
}

// NamingRules builds rename rules from the defaults plus configured
// abbreviations, boolean prefixes, and short identifier policy.
func (c *Config) NamingRules() (*naming.Rules, error) {
	rules := naming.DefaultRules()
	if c == nil {
		return rules, nil
	}

	if c.ShortIdentifiers != "" {
		policy := naming.ShortPolicy(c.ShortIdentifiers)
		if !policy.Valid() {
			return nil, fmt.Errorf("short_identifiers: unknown policy %q", c.ShortIdentifiers)
		}
		rules.ShortIdentifiers = policy
	}

	if err := rules.AddAbbreviations(c.Abbreviations); err != nil {
		return nil, fmt.Errorf("abbreviations: %w", err)
	}
	rules.AddBooleanLeads(c.BooleanPrefixes...)

	return rules, nil
}
