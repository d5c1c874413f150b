// Package repo implements the core operations of the version-control engine:
// staging, removal, commits, status and history over a single working tree.
package repo

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"lgit/internal/config"
	"lgit/internal/repo/store/commit"
	"lgit/internal/repo/store/index"
	"lgit/internal/repo/store/object"
)

// Repository binds the stores of one initialized repository.
type Repository struct {
	Config  *config.RepoConfig
	FS      afero.Fs
	Objects *object.Context
	Index   *index.Context
	Commits *commit.Context

	log *zap.Logger
}

// New wires a Repository over an already resolved working tree. It does not
// touch the filesystem; use Open or Init for that.
func New(workTree string, fsys afero.Fs, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := config.NewRepoConfig(workTree)
	return &Repository{
		Config:  cfg,
		FS:      fsys,
		Objects: object.NewContext(cfg.ObjectsDir(), fsys),
		Index:   index.NewContext(cfg.IndexFile(), fsys),
		Commits: commit.NewContext(cfg.CommitsDir(), cfg.SnapshotsDir(), fsys),
		log:     logger,
	}
}

// Open binds to an existing repository rooted at workTree. The working tree
// must already be resolved (see config.DiscoverWorkTree); Open returns
// ErrNotRepository when its metadata directory is absent.
func Open(workTree string, fsys afero.Fs, logger *zap.Logger) (*Repository, error) {
	r := New(workTree, fsys, logger)
	if ok, err := afero.DirExists(fsys, r.Config.Root); err != nil {
		return nil, fmt.Errorf("stat %q: %w", r.Config.Root, err)
	} else if !ok {
		return nil, ErrNotRepository
	}
	return r, nil
}

// Init creates the repository metadata at workTree and returns
// (repository, created). Initializing an existing repository is not an
// error: any missing directories or files are recreated, and the default
// author is written only when the config file was absent.
func Init(workTree string, fsys afero.Fs, logger *zap.Logger) (*Repository, bool, error) {
	r := New(workTree, fsys, logger)
	cfg := r.Config

	created := true
	if ok, err := afero.DirExists(fsys, cfg.Root); err != nil {
		return nil, false, fmt.Errorf("stat %q: %w", cfg.Root, err)
	} else if ok {
		created = false
	}

	dirs := []string{
		cfg.Root,
		cfg.ObjectsDir(),
		cfg.CommitsDir(),
		cfg.SnapshotsDir(),
	}
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return nil, false, fmt.Errorf("create dir %q: %w", d, err)
		}
	}

	if ok, err := afero.Exists(fsys, cfg.IndexFile()); err != nil {
		return nil, false, fmt.Errorf("stat index: %w", err)
	} else if !ok {
		if err := afero.WriteFile(fsys, cfg.IndexFile(), nil, 0o644); err != nil {
			return nil, false, fmt.Errorf("create index: %w", err)
		}
	}

	if ok, err := afero.Exists(fsys, cfg.ConfigFile()); err != nil {
		return nil, false, fmt.Errorf("stat config: %w", err)
	} else if !ok {
		if err := config.WriteAuthor(fsys, cfg, config.DefaultAuthor()); err != nil {
			return nil, false, err
		}
	}

	r.log.Debug("repository initialized",
		zap.String("root", cfg.Root), zap.Bool("created", created))
	return r, created, nil
}

// ListFiles returns every tracked path, sorted.
func (r *Repository) ListFiles() ([]string, error) {
	entries, err := r.Index.Load()
	if err != nil {
		return nil, err
	}
	return sortedPaths(entries), nil
}

// Log returns all commit records, newest first.
func (r *Repository) Log() ([]commit.Record, error) {
	return r.Commits.List()
}

// HasCommits reports whether any commit has been recorded.
func (r *Repository) HasCommits() (bool, error) {
	empty, err := r.Commits.Empty()
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// mtimeOf renders a file's modification time in the index's 14-digit form.
func (r *Repository) mtimeOf(absPath string) (string, error) {
	fi, err := r.FS.Stat(absPath)
	if err != nil {
		return "", err
	}
	return fi.ModTime().Format("20060102150405"), nil
}
