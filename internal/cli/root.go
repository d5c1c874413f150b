// Package cli wires the command-line surface: argument parsing, repository
// discovery from the caller's directory, and human-readable printing over
// the data the core computes.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"lgit/internal/config"
	"lgit/internal/dlogger"
	"lgit/internal/repo"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "lgit",
	Short:         "A lightweight version of git",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level",
		dlogger.LevelNone, "log level (none, info, debug)")
}

// Execute runs the CLI. The caller renders the returned error.
func Execute() error {
	return rootCmd.Execute()
}

// openRepo discovers the enclosing repository by walking up from the
// current directory and binds to it.
func openRepo() (*repo.Repository, error) {
	fsys := afero.NewOsFs()
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	workTree := config.DiscoverWorkTree(fsys, cwd)
	if workTree == "" {
		return nil, repo.ErrNotRepository
	}
	logger, err := dlogger.New(logLevel)
	if err != nil {
		return nil, err
	}
	return repo.Open(workTree, fsys, logger)
}

// absArgs resolves pathspec arguments against the caller's directory before
// the core sees them; the core itself never reads the CWD.
func absArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}
