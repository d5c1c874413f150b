package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"lgit/internal/config"
	"lgit/internal/dlogger"
	"lgit/internal/repo"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize version control in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := afero.NewOsFs()
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		logger, err := dlogger.New(logLevel)
		if err != nil {
			return err
		}

		// Re-running init inside an existing repository repairs any
		// missing metadata instead of nesting a new one.
		workTree := config.DiscoverWorkTree(fsys, cwd)
		if workTree == "" {
			workTree = cwd
		}

		_, created, err := repo.Init(workTree, fsys, logger)
		if err != nil {
			return err
		}
		if !created {
			fmt.Fprintln(cmd.OutOrStdout(), "Git repository already initialized.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
