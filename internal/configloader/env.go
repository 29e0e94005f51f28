package configloader

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/camelsnake/pkg/config"
)

// envVarPrefix prefixes every environment override.
const envVarPrefix = "CAMELSNAKE_"

// envBinding maps one environment variable onto the config.
type envBinding struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envBindings is keyed by variable name without the prefix.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = map[string]envBinding{
	"EXTENSIONS": {
		description: "Comma-separated file suffixes to process",
		apply: func(cfg *config.Config, v string) error {
			cfg.Extensions = parseSliceValue(v)
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated glob patterns to skip",
		apply: func(cfg *config.Config, v string) error {
			cfg.Ignore = parseSliceValue(v)
			return nil
		},
	},
	"IGNORE_MARKERS": {
		description: "Comma-separated directory names never walked",
		apply: func(cfg *config.Config, v string) error {
			cfg.IgnoreMarkers = parseSliceValue(v)
			return nil
		},
	},
	"FOLLOW_SYMLINKS": {
		description: "Follow symlinked directories: true or false",
		apply:       boolSetter(func(cfg *config.Config) **bool { return &cfg.FollowSymlinks }),
	},
	"DETECT_LANGUAGE": {
		description: "Detect C/C++ files by content: true or false",
		apply:       boolSetter(func(cfg *config.Config) **bool { return &cfg.DetectLanguage }),
	},
	"SKIP_VENDOR": {
		description: "Skip vendored paths: true or false",
		apply:       boolSetter(func(cfg *config.Config) **bool { return &cfg.SkipVendor }),
	},
	"SHORT_IDENTIFIERS": {
		description: "Short identifier policy: error or keep",
		apply: func(cfg *config.Config, v string) error {
			cfg.ShortIdentifiers = v
			return nil
		},
	},
	"BACKUPS_ENABLED": {
		description: "Enable backups when rewriting: true or false",
		apply:       boolSetter(func(cfg *config.Config) **bool { return &cfg.Backups.Enabled }),
	},
	"BACKUPS_MODE": {
		description: "Backup mode: sidecar or none",
		apply: func(cfg *config.Config, v string) error {
			cfg.Backups.Mode = v
			return nil
		},
	},
	"FORMAT": {
		description: "Output format: text, echo, content, diff, or json",
		apply: func(cfg *config.Config, v string) error {
			cfg.Format = config.OutputFormat(v)
			return nil
		},
	},
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, v string) error {
			jobs, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	"NO_BACKUPS": {
		description: "Disable backups: true or false",
		apply: func(cfg *config.Config, v string) error {
			b, err := parseBool(v)
			if err != nil {
				return err
			}
			cfg.NoBackups = b
			return nil
		},
	},
}

func boolSetter(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		*field(cfg) = config.Bool(b)
		return nil
	}
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
	}
	return b, nil
}

// LoadFromEnv applies CAMELSNAKE_* overrides to cfg. Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range slices.Sorted(maps.Keys(envBindings)) {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := envBindings[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envBindings))
	for suffix, binding := range envBindings {
		vars[envVarPrefix+suffix] = binding.description
	}
	return vars
}

// parseSliceValue splits a comma-separated list, trimming and dropping
// empty elements.
func parseSliceValue(value string) []string {
	var result []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
