package index

// Entry is the staging record for one tracked path. The three hashes track
// the file's content as last seen on disk, as last staged, and as last
// committed; CommittedHash holds the 40-space sentinel until the path is
// first committed.
type Entry struct {
	Path          string // repository-relative, forward-slash separators
	MTime         string // YYYYMMDDHHMMSS of the working-tree file
	WorkingHash   string
	StagedHash    string
	CommittedHash string
}

// Entries is the materialized index, keyed by path.
type Entries map[string]Entry

// Upsert creates or replaces the entry for e.Path.
func (m Entries) Upsert(e Entry) {
	m[e.Path] = e
}

// Remove deletes the entry for path. Removing an untracked path is a no-op;
// callers that need to report it must check first.
func (m Entries) Remove(path string) {
	delete(m, path)
}
