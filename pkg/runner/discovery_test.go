package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/camelsnake/pkg/runner"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func discover(t *testing.T, opts runner.Options) []string {
	t.Helper()
	files, err := runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(opts.WorkingDir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func assertFiles(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d files %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.cc":      "",
		"lib/util.cpp": "",
		"lib/util.h":   "",
		"lib/c/old.c":  "",
		"README.md":    "",
		"lib/util.hpp": "",
		"build.py":     "",
	})

	got := discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"lib/c/old.c", "lib/util.cpp", "lib/util.h", "main.cc"})
}

func TestDiscover_SingleFileAnySuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"widget.inl": ""})

	got := discover(t, runner.Options{WorkingDir: dir, Paths: []string{"widget.inl"}})
	assertFiles(t, got, []string{"widget.inl"})
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.hpp": "", "b.cc": ""})

	got := discover(t, runner.Options{WorkingDir: dir, Extensions: []string{".hpp"}})
	assertFiles(t, got, []string{"a.hpp"})
}

func TestDiscover_ExtensionCaseSensitive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"legacy.C": "", "new.c": ""})

	got := discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"new.c"})
}

func TestDiscover_IgnoreMarkers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/keep.cc":                 "",
		"src/test-inputs/skip.cc":     "",
		"third-party/zlib/inflate.c":  "",
		"src/linters/deep/nested.cpp": "",
		"src/test-inputs-old/keep.cc": "",
	})

	got := discover(t, runner.Options{
		WorkingDir:    dir,
		IgnoreMarkers: []string{"test-inputs", "third-party", "linters"},
	})
	assertFiles(t, got, []string{"src/keep.cc", "src/test-inputs-old/keep.cc"})
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/a.cc":              "",
		"src/a_generated.cc":    "",
		"gen/proto/msg.pb.cc":   "",
		"src/sub/b.cc":          "",
		"src/sub/b_generated.h": "",
	})

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "base name pattern",
			patterns: []string{"*_generated.*"},
			want:     []string{"gen/proto/msg.pb.cc", "src/a.cc", "src/sub/b.cc"},
		},
		{
			name:     "directory tree",
			patterns: []string{"gen/**"},
			want:     []string{"src/a.cc", "src/a_generated.cc", "src/sub/b.cc", "src/sub/b_generated.h"},
		},
		{
			name:     "anchored path",
			patterns: []string{"src/*.cc"},
			want:     []string{"gen/proto/msg.pb.cc", "src/sub/b.cc", "src/sub/b_generated.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := discover(t, runner.Options{WorkingDir: dir, ExcludeGlobs: tt.patterns})
			assertFiles(t, got, tt.want)
		})
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"[unclosed"},
	})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestDiscover_HiddenAndBackups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.cc":                 "",
		"a.cc.camelsnake.bak":  "",
		".hidden.cc":           "",
		".git/hooks/sample.cc": "",
	})

	got := discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"a.cc"})
}

func TestDiscover_SkipVendor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/a.cc":            "",
		"vendor/lib/b.cc":     "",
		"node_modules/x/c.cc": "",
	})

	got := discover(t, runner.Options{WorkingDir: dir, SkipVendor: true})
	assertFiles(t, got, []string{"src/a.cc"})

	got = discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"node_modules/x/c.cc", "src/a.cc", "vendor/lib/b.cc"})
}

func TestDiscover_DetectLanguage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.cc":      "",
		"impl.cxx":  "#include <vector>\nint main() { return 0; }\n",
		"notes.txt": "just words\n",
	})

	got := discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"a.cc"})

	got = discover(t, runner.Options{WorkingDir: dir, DetectLanguage: true})
	assertFiles(t, got, []string{"a.cc", "impl.cxx"})
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"src/a.cc": ""})

	got := discover(t, runner.Options{WorkingDir: dir, Paths: []string{"src", "src/a.cc", "."}})
	assertFiles(t, got, []string{"src/a.cc"})
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"missing"},
	})
	if !errors.Is(err, runner.ErrPathNotFound) {
		t.Fatalf("error = %v, want ErrPathNotFound", err)
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.cc": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{WorkingDir: dir}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, dir, map[string]string{"src/a.cc": ""})
	writeTree(t, outside, map[string]string{"shared.h": ""})

	if err := os.Symlink(outside, filepath.Join(dir, "src", "shared")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	// A cycle back to src must not loop.
	if err := os.Symlink(filepath.Join(dir, "src"), filepath.Join(outside, "back")); err != nil {
		t.Fatalf("setup symlink: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %v, want a.cc and shared.h", files)
	}

	got := discover(t, runner.Options{WorkingDir: dir})
	assertFiles(t, got, []string{"src/a.cc"})
}

func TestDiscover_FileSymlinkResolvesTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/a.cc": ""})
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "real", "a.cc"), filepath.Join(dir, "src", "link.cc")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := discover(t, runner.Options{WorkingDir: dir, Paths: []string{"src"}, FollowSymlinks: true})
	assertFiles(t, got, []string{"real/a.cc"})
}
