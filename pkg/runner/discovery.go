package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/camelsnake/pkg/fsutil"
	"github.com/yaklabco/camelsnake/pkg/langdetect"
)

// ErrPathNotFound is returned when a named path does not exist.
var ErrPathNotFound = errors.New("path not found")

// detectLimit bounds how much of a file is read for language detection.
const detectLimit = 16 * 1024

// discoverer holds the state of one discovery pass.
type discoverer struct {
	opts       Options
	workDir    string
	extensions []string
	excludes   globSet

	// visited holds resolved directories, so symlink cycles are walked once.
	visited map[string]struct{}
}

// Discover finds C and C++ sources under opts.Paths.
// It returns a sorted, deduplicated list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		opts:       opts,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   excludes,
		visited:    make(map[string]struct{}),
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, inputPath)
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		discovered, err := d.walk(ctx, absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)

	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func (d *discoverer) walk(ctx context.Context, root string) ([]string, error) {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if _, ok := d.visited[real]; ok {
			return nil, nil
		}
		d.visited[real] = struct{}{}
	}

	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := d.relative(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if d.skipDir(entry.Name(), rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(path)
			if statErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			if target.IsDir() {
				if !d.opts.FollowSymlinks || d.skipDir(entry.Name(), rel) {
					return nil
				}
				real, evalErr := filepath.EvalSymlinks(path)
				if evalErr != nil {
					return nil //nolint:nilerr // unresolvable symlinks are skipped
				}
				// WalkDir does not descend into symlinks, so walk the target.
				sub, err := d.walk(ctx, real)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
			if !d.opts.FollowSymlinks {
				return nil
			}
			real, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // unresolvable symlinks are skipped
			}
			// Rewrite the target so an atomic rename keeps the link intact.
			if d.acceptFile(real, entry.Name(), rel) {
				files = append(files, real)
			}
			return nil
		}

		if d.acceptFile(path, entry.Name(), rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// relative returns path relative to the working directory, slash separated.
func (d *discoverer) relative(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func (d *discoverer) skipDir(name, rel string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if slices.Contains(d.opts.IgnoreMarkers, name) {
		return true
	}
	if d.opts.SkipVendor && langdetect.IsVendor(rel+"/") {
		return true
	}
	return d.excludes.matchDir(rel)
}

func (d *discoverer) acceptFile(path, name, rel string) bool {
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, fsutil.BackupSuffix) {
		return false
	}
	if d.excludes.matchFile(rel) {
		return false
	}
	if d.opts.SkipVendor && langdetect.IsVendor(rel) {
		return false
	}
	if hasMatchingExtension(name, d.extensions) {
		return true
	}
	if !d.opts.DetectLanguage {
		return false
	}
	head, err := readHead(path)
	if err != nil {
		return false
	}
	return langdetect.IsCFamily(path, head)
}

// hasMatchingExtension reports whether name ends with one of extensions.
// The comparison is exact, since ".C" and ".c" name different languages.
func hasMatchingExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, detectLimit)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return nil, err
	}
	return buf[:n], nil
}
