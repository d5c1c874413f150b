package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"lgit/internal/config"
)

func TestRepoConfigPaths(t *testing.T) {
	cfg := config.NewRepoConfig("/work")

	require.Equal(t, filepath.Join("/work", ".lgit"), cfg.Root)
	require.Equal(t, filepath.Join(cfg.Root, "objects"), cfg.ObjectsDir())
	require.Equal(t, filepath.Join(cfg.Root, "commits"), cfg.CommitsDir())
	require.Equal(t, filepath.Join(cfg.Root, "snapshots"), cfg.SnapshotsDir())
	require.Equal(t, filepath.Join(cfg.Root, "index"), cfg.IndexFile())
	require.Equal(t, filepath.Join(cfg.Root, "config"), cfg.ConfigFile())
}

func TestAuthorRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := config.NewRepoConfig("/work")

	require.NoError(t, config.WriteAuthor(fsys, cfg, "alice"))

	got, err := config.ReadAuthor(fsys, cfg)
	require.NoError(t, err)
	require.Equal(t, "alice", got)

	// The file itself is a single line.
	data, err := afero.ReadFile(fsys, cfg.ConfigFile())
	require.NoError(t, err)
	require.Equal(t, "alice\n", string(data))
}

func TestAuthorMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := config.NewRepoConfig("/work")

	got, err := config.ReadAuthor(fsys, cfg)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestDefaultAuthorFromLogname(t *testing.T) {
	t.Setenv("LOGNAME", "carol")
	require.Equal(t, "carol", config.DefaultAuthor())
}

func TestDiscoverWorkTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/a/b/.lgit", 0o755))
	require.NoError(t, fsys.MkdirAll("/a/b/c/d", 0o755))

	require.Equal(t, "/a/b", config.DiscoverWorkTree(fsys, "/a/b/c/d"))
	require.Equal(t, "/a/b", config.DiscoverWorkTree(fsys, "/a/b"))
	require.Equal(t, "", config.DiscoverWorkTree(fsys, "/elsewhere"))
}
