// Package index persists the staging table: one fixed-width text line per
// tracked path. The file is fully materialized on load and fully rewritten
// on save; there is no in-place patching.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Context handles reading and writing one index file.
type Context struct {
	Path string
	FS   afero.Fs
}

// NewContext creates a Context over the given index file path.
func NewContext(path string, fsys afero.Fs) *Context {
	return &Context{Path: path, FS: fsys}
}

// Load parses the whole index into a path-keyed map. A missing index loads
// as empty; a malformed line aborts the load.
func (c *Context) Load() (Entries, error) {
	data, err := afero.ReadFile(c.FS, c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entries{}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	entries := Entries{}
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		e, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("index line %d: %w", i+1, err)
		}
		entries[e.Path] = e
	}
	return entries, nil
}

// Save rewrites the whole index. Entries are written sorted by path; order
// is not part of the on-disk contract, sorting just keeps writes
// deterministic. The replacement is atomic (temp file + rename).
func (c *Context) Save(entries Entries) error {
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		b.WriteString(encodeEntry(entries[p]))
		b.WriteByte('\n')
	}

	dir := filepath.Dir(c.Path)
	tmp, err := afero.TempFile(c.FS, dir, ".index-*")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpPath := tmp.Name()
	defer c.FS.Remove(tmpPath)

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp index: %w", err)
	}
	if err := c.FS.Rename(tmpPath, c.Path); err != nil {
		return fmt.Errorf("replace index: %w", err)
	}
	return nil
}
