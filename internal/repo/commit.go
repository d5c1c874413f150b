package repo

import (
	"time"

	"go.uber.org/zap"

	"lgit/internal/config"
	"lgit/internal/digest"
	"lgit/internal/repo/store/commit"
)

// Commit materializes one commit record and its snapshot from the current
// index, then advances every entry's committed hash to its staged hash. The
// author is read fresh from config; an empty identity aborts with
// ErrMissingAuthor before anything is written.
//
// After the snapshot is written, each entry's working hash and mtime are
// refreshed from the live working-tree file. A file edited between add and
// commit is therefore snapshotted with its staged content while the index
// reflects the current on-disk state, so an immediately following status can
// report it as not staged again. That mirrors the source system and is kept
// deliberately.
func (r *Repository) Commit(message string) (*commit.Record, error) {
	author, err := config.ReadAuthor(r.FS, r.Config)
	if err != nil {
		return nil, err
	}
	if author == "" {
		return nil, ErrMissingAuthor
	}

	entries, err := r.Index.Load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := commit.Record{
		Key:     commit.Key(now),
		Author:  author,
		Stamp:   commit.Stamp(now),
		Message: message,
	}
	if err := r.Commits.Write(rec); err != nil {
		return nil, err
	}
	if err := r.Commits.WriteSnapshot(rec.Key, entries); err != nil {
		return nil, err
	}

	for path, e := range entries {
		e.CommittedHash = e.StagedHash

		abs := r.absPath(path)
		if dgst, derr := digest.File(r.FS, abs); derr == nil {
			e.WorkingHash = dgst
			if mtime, merr := r.mtimeOf(abs); merr == nil {
				e.MTime = mtime
			}
		} else {
			// The commit record already exists; an unreadable file keeps
			// its previous working state and status picks it up later.
			r.log.Debug("post-commit refresh failed",
				zap.String("path", path), zap.Error(derr))
		}
		entries[path] = e
	}

	if err := r.Index.Save(entries); err != nil {
		return nil, err
	}

	r.log.Debug("commit written",
		zap.String("key", rec.Key), zap.Int("entries", len(entries)))
	return &rec, nil
}
