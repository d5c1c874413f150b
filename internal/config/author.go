package config

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/afero"
)

// ReadAuthor returns the author identity from the repository config file.
// An empty or missing identity returns "".
func ReadAuthor(fsys afero.Fs, cfg *RepoConfig) (string, error) {
	data, err := afero.ReadFile(fsys, cfg.ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// WriteAuthor replaces the author identity. The file holds a single line.
func WriteAuthor(fsys afero.Fs, cfg *RepoConfig, author string) error {
	if err := afero.WriteFile(fsys, cfg.ConfigFile(), []byte(author+"\n"), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultAuthor is the identity written at init time: the invoking user's
// login name, or "" when none can be determined.
func DefaultAuthor() string {
	if name := os.Getenv("LOGNAME"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
