// Package object persists content-addressed blobs. A blob is keyed by the
// digest of its bytes and stored under a two-level layout: the first two hex
// characters name the shard directory, the remaining 38 name the file.
// Blobs are write-once and never deleted.
package object

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"lgit/internal/digest"
)

// ErrNotFound is returned by Get when no blob exists for a digest.
var ErrNotFound = errors.New("object not found")

// Context handles blob storage under Dir.
type Context struct {
	Dir string
	FS  afero.Fs
}

// NewContext creates a Context over the given objects directory.
func NewContext(dir string, fsys afero.Fs) *Context {
	return &Context{Dir: dir, FS: fsys}
}

// Put stores data under its digest and returns the digest. Re-putting
// identical bytes is a no-op after the first write.
func (c *Context) Put(data []byte) (string, error) {
	dgst := digest.Bytes(data)
	path, err := c.blobPath(dgst)
	if err != nil {
		return "", err
	}
	if ok, err := afero.Exists(c.FS, path); err != nil {
		return "", fmt.Errorf("stat object %s: %w", dgst, err)
	} else if ok {
		return dgst, nil
	}
	if err := c.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create shard dir for %s: %w", dgst, err)
	}
	if err := afero.WriteFile(c.FS, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write object %s: %w", dgst, err)
	}
	return dgst, nil
}

// Exists reports whether a blob with the given digest is present.
func (c *Context) Exists(dgst string) (bool, error) {
	path, err := c.blobPath(dgst)
	if err != nil {
		return false, err
	}
	ok, err := afero.Exists(c.FS, path)
	if err != nil {
		return false, fmt.Errorf("stat object %s: %w", dgst, err)
	}
	return ok, nil
}

// Get returns the content of the blob with the given digest, or ErrNotFound
// when the shard or blob file is absent.
func (c *Context) Get(dgst string) ([]byte, error) {
	path, err := c.blobPath(dgst)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(c.FS, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w", dgst, ErrNotFound)
		}
		return nil, fmt.Errorf("read object %s: %w", dgst, err)
	}
	return data, nil
}

func (c *Context) blobPath(dgst string) (string, error) {
	if len(dgst) != digest.Size {
		return "", fmt.Errorf("invalid digest %q", dgst)
	}
	return filepath.Join(c.Dir, dgst[:2], dgst[2:]), nil
}
