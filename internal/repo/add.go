package repo

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"lgit/internal/digest"
	"lgit/internal/repo/store/index"
)

// AddResult reports the outcome of staging one batch of pathspecs.
type AddResult struct {
	Staged  []string // paths whose blobs were stored and entries upserted
	Skipped []string // unreadable files, reported and left unstaged
}

// Add stages the files the pathspecs resolve to: each file's content is
// stored as a blob and its index entry is created or refreshed with
// working = staged = digest. An unreadable file is skipped and the batch
// continues; an unresolvable pathspec aborts before the index is written.
// The committed hash is never touched here; staging does not advance
// history.
func (r *Repository) Add(pathspecs []string) (*AddResult, error) {
	entries, err := r.Index.Load()
	if err != nil {
		return nil, err
	}

	files, err := r.resolvePathspecs(pathspecs)
	if err != nil {
		return nil, err
	}

	res := &AddResult{}
	for _, rel := range files {
		abs := r.absPath(rel)

		data, err := afero.ReadFile(r.FS, abs)
		if err != nil {
			r.log.Warn("skipping unreadable file",
				zap.String("path", rel), zap.Error(err))
			res.Skipped = append(res.Skipped, rel)
			continue
		}

		dgst, err := r.Objects.Put(data)
		if err != nil {
			return nil, fmt.Errorf("store %q: %w", rel, err)
		}

		mtime, err := r.mtimeOf(abs)
		if err != nil {
			r.log.Warn("skipping unstattable file",
				zap.String("path", rel), zap.Error(err))
			res.Skipped = append(res.Skipped, rel)
			continue
		}

		committed := digest.Sentinel
		if prev, ok := entries[rel]; ok {
			committed = prev.CommittedHash
		}
		entries.Upsert(index.Entry{
			Path:          rel,
			MTime:         mtime,
			WorkingHash:   dgst,
			StagedHash:    dgst,
			CommittedHash: committed,
		})
		res.Staged = append(res.Staged, rel)
	}

	if err := r.Index.Save(entries); err != nil {
		return nil, err
	}
	return res, nil
}
