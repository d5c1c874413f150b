package repo

import (
	"fmt"

	"go.uber.org/zap"

	"lgit/internal/repo/store/index"
)

// Remove untracks each argument and unlinks it from the working tree; the
// two effects always happen together. Directory arguments are refused
// (callers expand them one file at a time) and an argument matching no
// tracked file is fatal. Either failure abandons the remaining batch, but
// removals already performed stay persisted so unlink and untrack never
// diverge.
func (r *Repository) Remove(paths []string) error {
	entries, err := r.Index.Load()
	if err != nil {
		return err
	}

	for _, arg := range paths {
		rel, rerr := r.relPath(arg)
		if rerr != nil {
			return r.failBatch(entries, rerr)
		}
		abs := r.absPath(rel)

		fi, statErr := r.FS.Stat(abs)
		if statErr == nil && fi.IsDir() {
			return r.failBatch(entries, &RecursiveRemovalError{Path: arg})
		}

		_, tracked := entries[rel]
		if statErr != nil || !fi.Mode().IsRegular() || !tracked {
			return r.failBatch(entries, &PathspecError{Pathspec: arg})
		}

		if err := r.FS.Remove(abs); err != nil {
			return r.failBatch(entries, fmt.Errorf("unlink %q: %w", rel, err))
		}
		entries.Remove(rel)
	}

	return r.Index.Save(entries)
}

// failBatch persists whatever the batch removed before the failure, then
// reports the failure itself.
func (r *Repository) failBatch(entries index.Entries, cause error) error {
	if err := r.Index.Save(entries); err != nil {
		r.log.Warn("could not persist index after failed removal", zap.Error(err))
	}
	return cause
}
