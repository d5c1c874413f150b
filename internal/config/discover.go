package config

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// DiscoverWorkTree walks up from dir until it finds a directory containing
// the metadata directory, and returns that directory. It returns "" when no
// ancestor is a repository.
func DiscoverWorkTree(fsys afero.Fs, dir string) string {
	cur := filepath.Clean(dir)
	for {
		if ok, _ := afero.DirExists(fsys, filepath.Join(cur, RepoDirName)); ok {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return ""
		}
		cur = parent
	}
}
