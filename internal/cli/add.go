package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <paths...>",
	Short: "Stage file content into the index and object store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		paths, err := absArgs(args)
		if err != nil {
			return err
		}
		res, err := r.Add(paths)
		if err != nil {
			return err
		}
		for _, p := range res.Skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: could not read '%s', skipping\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
