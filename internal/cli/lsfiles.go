package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var lsFilesCmd = &cobra.Command{
	Use:   "ls-files",
	Short: "List tracked files under the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		paths, err := r.ListFiles()
		if err != nil {
			return err
		}

		// Narrow to the invoking directory and print relative to it.
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		prefix, err := filepath.Rel(r.Config.WorkTree, cwd)
		if err != nil {
			return err
		}
		prefix = filepath.ToSlash(prefix)

		out := cmd.OutOrStdout()
		for _, p := range paths {
			if prefix == "." {
				fmt.Fprintln(out, p)
				continue
			}
			if rest, ok := strings.CutPrefix(p, prefix+"/"); ok {
				fmt.Fprintln(out, rest)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsFilesCmd)
}
