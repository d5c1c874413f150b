package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"lgit/internal/config"
	"lgit/internal/repo/store/index"
)

// relPath converts a caller-supplied path (absolute, or relative to the
// working tree root) into the repository-relative, forward-slash form the
// index is keyed by. Paths escaping the working tree are rejected.
func (r *Repository) relPath(path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.Config.WorkTree, abs)
	}
	rel, err := filepath.Rel(r.Config.WorkTree, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathspecError{Pathspec: path}
	}
	return filepath.ToSlash(rel), nil
}

// absPath is the inverse of relPath.
func (r *Repository) absPath(rel string) string {
	return filepath.Join(r.Config.WorkTree, filepath.FromSlash(rel))
}

// resolvePathspecs expands the arguments of an add invocation into a sorted,
// de-duplicated list of repository-relative file paths. Directories and "."
// expand recursively, glob metacharacters expand via the filesystem, and an
// argument matching nothing aborts the whole resolution with a
// PathspecError.
func (r *Repository) resolvePathspecs(pathspecs []string) ([]string, error) {
	seen := map[string]struct{}{}

	addFile := func(path string) error {
		rel, err := r.relPath(path)
		if err != nil {
			return err
		}
		seen[rel] = struct{}{}
		return nil
	}

	for _, spec := range pathspecs {
		switch {
		case spec == ".":
			files, err := r.walkWorkTree(r.Config.WorkTree)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				seen[f] = struct{}{}
			}

		case strings.ContainsAny(spec, "*?["):
			pattern := spec
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(r.Config.WorkTree, pattern)
			}
			matches, err := afero.Glob(r.FS, pattern)
			if err != nil {
				return nil, fmt.Errorf("glob %q: %w", spec, err)
			}
			if len(matches) == 0 {
				return nil, &PathspecError{Pathspec: spec}
			}
			for _, m := range matches {
				fi, err := r.FS.Stat(m)
				if err != nil {
					return nil, &PathspecError{Pathspec: spec}
				}
				if fi.IsDir() {
					files, err := r.walkWorkTree(m)
					if err != nil {
						return nil, err
					}
					for _, f := range files {
						seen[f] = struct{}{}
					}
					continue
				}
				if err := addFile(m); err != nil {
					return nil, err
				}
			}

		default:
			abs := spec
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(r.Config.WorkTree, abs)
			}
			fi, err := r.FS.Stat(abs)
			if err != nil {
				return nil, &PathspecError{Pathspec: spec}
			}
			if fi.IsDir() {
				files, err := r.walkWorkTree(abs)
				if err != nil {
					return nil, err
				}
				for _, f := range files {
					seen[f] = struct{}{}
				}
				continue
			}
			if !fi.Mode().IsRegular() {
				return nil, &PathspecError{Pathspec: spec}
			}
			if err := addFile(abs); err != nil {
				return nil, err
			}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// walkWorkTree lists every regular file under dir as repository-relative
// paths, skipping the metadata directory.
func (r *Repository) walkWorkTree(dir string) ([]string, error) {
	var files []string
	err := afero.Walk(r.FS, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if fi.Name() == config.RepoDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		rel, rerr := r.relPath(path)
		if rerr != nil {
			return rerr
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", dir, err)
	}
	return files, nil
}

func sortedPaths(entries index.Entries) []string {
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
