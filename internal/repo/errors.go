package repo

import (
	"errors"
	"fmt"
)

// ErrNotRepository means no metadata directory was found for the requested
// working tree.
var ErrNotRepository = errors.New("not a git repository (or any of the parent directories)")

// ErrMissingAuthor aborts a commit when the config file holds no identity.
// No commit artifacts are produced.
var ErrMissingAuthor = errors.New("author identity is empty")

// PathspecError reports an argument that resolved to no tracked or existing
// file. It is fatal to the invocation that raised it.
type PathspecError struct {
	Pathspec string
}

func (e *PathspecError) Error() string {
	return fmt.Sprintf("pathspec '%s' did not match any files", e.Pathspec)
}

// RecursiveRemovalError refuses to remove a directory argument. Callers must
// expand directories one file at a time.
type RecursiveRemovalError struct {
	Path string
}

func (e *RecursiveRemovalError) Error() string {
	return fmt.Sprintf("not removing '%s' recursively", e.Path)
}
