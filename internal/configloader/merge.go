package configloader

import (
	"maps"

	"github.com/yaklabco/camelsnake/pkg/config"
)

// merge layers override on top of base:
//   - scalars: a non-zero override wins
//   - pointer booleans: a non-nil override wins, so false can be set
//   - slices: a non-nil override replaces base
//   - abbreviations: keys are merged, override wins
//   - CLI booleans: true in override wins
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.ShortIdentifiers != "" {
		result.ShortIdentifiers = override.ShortIdentifiers
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	result.FollowSymlinks = pick(base.FollowSymlinks, override.FollowSymlinks)
	result.DetectLanguage = pick(base.DetectLanguage, override.DetectLanguage)
	result.SkipVendor = pick(base.SkipVendor, override.SkipVendor)
	result.Backups.Enabled = pick(base.Backups.Enabled, override.Backups.Enabled)

	result.Rewrite = base.Rewrite || override.Rewrite
	result.DryRun = base.DryRun || override.DryRun
	result.Check = base.Check || override.Check
	result.NoBackups = base.NoBackups || override.NoBackups
	result.Progress = base.Progress || override.Progress

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.IgnoreMarkers != nil {
		result.IgnoreMarkers = override.IgnoreMarkers
	}
	if override.BooleanPrefixes != nil {
		result.BooleanPrefixes = override.BooleanPrefixes
	}

	if base.Abbreviations != nil || override.Abbreviations != nil {
		result.Abbreviations = make(map[string]string, len(base.Abbreviations)+len(override.Abbreviations))
		maps.Copy(result.Abbreviations, base.Abbreviations)
		maps.Copy(result.Abbreviations, override.Abbreviations)
	}

	return &result
}

func pick(base, override *bool) *bool {
	if override != nil {
		return override
	}
	return base
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
