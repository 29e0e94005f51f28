// Package runner discovers C/C++ sources and rewrites them concurrently.
package runner

import (
	"github.com/yaklabco/camelsnake/pkg/config"
	"github.com/yaklabco/camelsnake/pkg/pipeline"
)

// Options controls discovery and processing.
type Options struct {
	// Paths are files or directories. Empty means the working directory.
	// Named files are processed whatever their suffix.
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob matching.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the suffixes accepted while walking directories.
	Extensions []string

	// ExcludeGlobs skip matching files and directories. A pattern without a
	// slash also matches against the base name.
	ExcludeGlobs []string

	// IgnoreMarkers are directory names whose trees are never walked.
	IgnoreMarkers []string

	FollowSymlinks bool

	// DetectLanguage accepts files go-enry classifies as C or C++ even when
	// their suffix is not in Extensions.
	DetectLanguage bool

	// SkipVendor skips paths go-enry classifies as vendored.
	SkipVendor bool

	// Jobs bounds concurrent workers. 0 or negative means runtime.NumCPU().
	Jobs int

	Pipeline pipeline.Options

	// OnFile is called once per file as it completes, from a single goroutine.
	OnFile func(FileOutcome)
}

// OptionsFromConfig builds Options for paths from the merged configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:          paths,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		IgnoreMarkers:  cfg.IgnoreMarkers,
		FollowSymlinks: cfg.FollowsSymlinks(),
		DetectLanguage: cfg.DetectsLanguage(),
		SkipVendor:     cfg.SkipsVendor(),
		Jobs:           cfg.Jobs,
		Pipeline:       pipeline.OptionsFromConfig(cfg),
	}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
