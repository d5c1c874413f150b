// Package commit writes the append-only history: one immutable commit
// record plus one snapshot (tree listing) per commit, both named by the same
// high-resolution timestamp key. There are no parent pointers; lexicographic
// order on the fixed-width key is chronological order.
package commit

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"lgit/internal/repo/store/index"
)

const (
	// keyLayout renders a timestamp with microsecond precision, so two
	// commits within the same second still get distinct keys.
	keyLayout = "20060102150405.000000"

	// stampLayout is the coarse, second-resolution display timestamp.
	stampLayout = "20060102150405"
)

// Key returns the high-resolution record key for t.
func Key(t time.Time) string { return t.Format(keyLayout) }

// Stamp returns the coarse display timestamp for t.
func Stamp(t time.Time) string { return t.Format(stampLayout) }

// KeyTime parses the coarse part of a record key back into a time.
func KeyTime(key string) (time.Time, error) {
	if len(key) < len(stampLayout) {
		return time.Time{}, fmt.Errorf("malformed commit key %q", key)
	}
	return time.Parse(stampLayout, key[:len(stampLayout)])
}

// Record is one immutable commit.
type Record struct {
	Key     string // timestamp key, also the record's file name
	Author  string
	Stamp   string // coarse display timestamp
	Message string
}

// Context handles the commits and snapshots directories of one repository.
type Context struct {
	CommitsDir   string
	SnapshotsDir string
	FS           afero.Fs
}

// NewContext creates a Context over the given directories.
func NewContext(commitsDir, snapshotsDir string, fsys afero.Fs) *Context {
	return &Context{CommitsDir: commitsDir, SnapshotsDir: snapshotsDir, FS: fsys}
}

// Write persists a commit record. Records are never rewritten.
func (c *Context) Write(r Record) error {
	content := fmt.Sprintf("%s\n%s\n\n%s\n", r.Author, r.Stamp, r.Message)
	path := filepath.Join(c.CommitsDir, r.Key)
	if err := afero.WriteFile(c.FS, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write commit %s: %w", r.Key, err)
	}
	return nil
}

// WriteSnapshot records the tree state for one commit: a
// "<staged_hash> <path>" line per index entry, sorted by path.
func (c *Context) WriteSnapshot(key string, entries index.Entries) error {
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		b.WriteString(entries[p].StagedHash)
		b.WriteByte(' ')
		b.WriteString(p)
		b.WriteByte('\n')
	}
	path := filepath.Join(c.SnapshotsDir, key)
	if err := afero.WriteFile(c.FS, path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", key, err)
	}
	return nil
}

// Read loads one commit record by key.
func (c *Context) Read(key string) (Record, error) {
	data, err := afero.ReadFile(c.FS, filepath.Join(c.CommitsDir, key))
	if err != nil {
		return Record{}, fmt.Errorf("read commit %s: %w", key, err)
	}
	return parseRecord(key, string(data))
}

// List returns every commit record, newest first.
func (c *Context) List() ([]Record, error) {
	infos, err := afero.ReadDir(c.FS, c.CommitsDir)
	if err != nil {
		return nil, fmt.Errorf("read commits dir: %w", err)
	}
	keys := make([]string, 0, len(infos))
	for _, fi := range infos {
		if !fi.IsDir() {
			keys = append(keys, fi.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		r, err := c.Read(key)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Empty reports whether no commits have been recorded yet.
func (c *Context) Empty() (bool, error) {
	infos, err := afero.ReadDir(c.FS, c.CommitsDir)
	if err != nil {
		return false, fmt.Errorf("read commits dir: %w", err)
	}
	for _, fi := range infos {
		if !fi.IsDir() {
			return false, nil
		}
	}
	return true, nil
}

func parseRecord(key, content string) (Record, error) {
	// <author>\n<stamp>\n\n<message>\n
	head, message, ok := strings.Cut(content, "\n\n")
	if !ok {
		return Record{}, fmt.Errorf("malformed commit %s", key)
	}
	author, stamp, ok := strings.Cut(head, "\n")
	if !ok {
		return Record{}, fmt.Errorf("malformed commit %s", key)
	}
	return Record{
		Key:     key,
		Author:  author,
		Stamp:   stamp,
		Message: strings.TrimSuffix(message, "\n"),
	}, nil
}
