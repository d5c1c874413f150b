// Package config describes the on-disk layout of a repository and the
// author identity stored inside it.
package config

import "path/filepath"

// RepoDirName is the metadata directory that marks a working tree as a
// repository.
const RepoDirName = ".lgit"

const (
	objectsDirName   = "objects"
	commitsDirName   = "commits"
	snapshotsDirName = "snapshots"
	indexFileName    = "index"
	configFileName   = "config"
)

// RepoConfig resolves paths inside one repository.
type RepoConfig struct {
	WorkTree string // root of the working tree
	Root     string // metadata directory, WorkTree/.lgit
}

// NewRepoConfig builds a RepoConfig rooted at the given working tree.
func NewRepoConfig(workTree string) *RepoConfig {
	return &RepoConfig{
		WorkTree: workTree,
		Root:     filepath.Join(workTree, RepoDirName),
	}
}

func (c *RepoConfig) ObjectsDir() string   { return filepath.Join(c.Root, objectsDirName) }
func (c *RepoConfig) CommitsDir() string   { return filepath.Join(c.Root, commitsDirName) }
func (c *RepoConfig) SnapshotsDir() string { return filepath.Join(c.Root, snapshotsDirName) }
func (c *RepoConfig) IndexFile() string    { return filepath.Join(c.Root, indexFileName) }
func (c *RepoConfig) ConfigFile() string   { return filepath.Join(c.Root, configFileName) }
