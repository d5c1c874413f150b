package repo

import (
	"sort"

	"lgit/internal/digest"
)

// ChangeKind classifies how a tracked path diverged from its staged content.
type ChangeKind int

const (
	Modified ChangeKind = iota
	Deleted
)

func (k ChangeKind) String() string {
	if k == Deleted {
		return "deleted"
	}
	return "modified"
}

// Change is one not-staged divergence.
type Change struct {
	Path string
	Kind ChangeKind
}

// Report is the classified working-tree status. A path may appear in both
// StagedForCommit and NotStaged. All lists are sorted by path.
type Report struct {
	StagedForCommit []string // staged hash differs from committed hash
	NotStaged       []Change // working content diverged from staged content
	Untracked       []string // working-tree files with no index entry
}

// Status recomputes every tracked path's working hash from the live file,
// classifies it, and lists untracked files. The refreshed index is persisted
// as a side effect: status doubles as the index's working-tree refresh. The
// object store is not touched.
func (r *Repository) Status() (*Report, error) {
	entries, err := r.Index.Load()
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for path, e := range entries {
		abs := r.absPath(path)
		if dgst, derr := digest.File(r.FS, abs); derr == nil {
			e.WorkingHash = dgst
			if mtime, merr := r.mtimeOf(abs); merr == nil {
				e.MTime = mtime
			}
		} else {
			// Deleted or unreadable: the sentinel keeps the field width and
			// can never equal a staged digest.
			e.WorkingHash = digest.Sentinel
		}

		if e.StagedHash != e.CommittedHash {
			rep.StagedForCommit = append(rep.StagedForCommit, path)
		}
		if e.StagedHash != e.WorkingHash {
			kind := Modified
			if e.WorkingHash == digest.Sentinel {
				kind = Deleted
			}
			rep.NotStaged = append(rep.NotStaged, Change{Path: path, Kind: kind})
		}
		entries[path] = e
	}

	working, err := r.walkWorkTree(r.Config.WorkTree)
	if err != nil {
		return nil, err
	}
	for _, path := range working {
		if _, tracked := entries[path]; !tracked {
			rep.Untracked = append(rep.Untracked, path)
		}
	}

	sort.Strings(rep.StagedForCommit)
	sort.Slice(rep.NotStaged, func(i, j int) bool {
		return rep.NotStaged[i].Path < rep.NotStaged[j].Path
	})
	sort.Strings(rep.Untracked)

	if err := r.Index.Save(entries); err != nil {
		return nil, err
	}
	return rep, nil
}
