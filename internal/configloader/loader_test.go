package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/camelsnake/pkg/config"
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.DefaultExtensions, result.Config.Extensions)
	assert.True(t, result.Config.FollowsSymlinks())
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, filepath.Join(root, ".camelsnake.yml"), `
extensions: [".hpp", ".cpp"]
follow_symlinks: false
abbreviations:
  idx: index
`)
	sub := filepath.Join(root, "src", "core")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := Load(context.Background(), isolated(sub))
	require.NoError(t, err)

	assert.Equal(t, []string{".hpp", ".cpp"}, result.Config.Extensions)
	assert.False(t, result.Config.FollowsSymlinks())
	assert.Equal(t, "index", result.Config.Abbreviations["idx"])
	assert.Equal(t, []string{filepath.Join(root, ".camelsnake.yml")}, result.LoadedFrom)
	assert.Equal(t, config.DefaultIgnoreMarkers, result.Config.IgnoreMarkers, "unset fields keep defaults")
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, filepath.Join(outer, ".camelsnake.yml"), "jobs: 1\n")

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".camelsnake.yml"), "short_identifiers: error\n")
	explicit := filepath.Join(dir, "custom.yml")
	writeConfig(t, explicit, "short_identifiers: keep\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "keep", result.Config.ShortIdentifiers)
	assert.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".camelsnake.yml"), "backups:\n  enabled: true\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		Format:    config.FormatEcho,
		Jobs:      3,
		Rewrite:   true,
		NoBackups: true,
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.FormatEcho, result.Config.Format)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.True(t, result.Config.Rewrite)
	assert.False(t, result.Config.BackupsEnabled())
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "extensions: [\n"},
		{"bad policy", "short_identifiers: drop\n"},
		{"bad backup mode", "backups:\n  mode: cloud\n"},
		{"bad extension", "extensions: [cpp]\n"},
		{"protected abbreviation", "abbreviations:\n  ptr: pointer\n"},
		{"bad glob", "ignore: [\"[\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, filepath.Join(dir, ".camelsnake.yml"), tt.content)

			_, err := Load(context.Background(), isolated(dir))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ValidationErrorNamesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".camelsnake.yml")
	writeConfig(t, path, "short_identifiers: drop\n")

	_, err := Load(context.Background(), isolated(dir))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, path, validationErr.FilePath)
	assert.Equal(t, "short_identifiers", validationErr.Field)
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".camelsnake.yml"), "abbreviations:\n  res: resource\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "overrides built-in expansion")
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CAMELSNAKE_EXTENSIONS", ".h, .hpp ,")
	t.Setenv("CAMELSNAKE_FOLLOW_SYMLINKS", "false")
	t.Setenv("CAMELSNAKE_JOBS", "2")
	t.Setenv("CAMELSNAKE_SHORT_IDENTIFIERS", "keep")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, []string{".h", ".hpp"}, cfg.Extensions)
	assert.False(t, cfg.FollowsSymlinks())
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "keep", cfg.ShortIdentifiers)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("CAMELSNAKE_DETECT_LANGUAGE", "sometimes")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CAMELSNAKE_DETECT_LANGUAGE")
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Contains(t, vars, "CAMELSNAKE_IGNORE")
	assert.Contains(t, vars, "CAMELSNAKE_BACKUPS_MODE")
	assert.Len(t, vars, len(envBindings))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Abbreviations["cfg"] = "config"

	middle := &config.Config{DetectLanguage: config.Bool(true), Ignore: []string{"a/**"}}
	top := &config.Config{
		DetectLanguage: config.Bool(false),
		Abbreviations:  map[string]string{"idx": "index"},
	}

	merged := MergeAll(base, middle, top)
	assert.False(t, merged.DetectsLanguage(), "false in a later layer must win")
	assert.Equal(t, []string{"a/**"}, merged.Ignore)
	assert.Equal(t, map[string]string{"cfg": "config", "idx": "index"}, merged.Abbreviations)
	assert.Equal(t, config.DefaultExtensions, merged.Extensions)

	assert.Nil(t, MergeAll())
}

func TestValidate_CheckWithRewriteWarns(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Check = true
	cfg.Rewrite = true

	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.True(t, result.HasWarnings())
	assert.Len(t, result.AllMessages(), 1)
}
