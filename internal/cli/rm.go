package cli

import "github.com/spf13/cobra"

var rmCmd = &cobra.Command{
	Use:   "rm <paths...>",
	Short: "Remove files from the working tree and the index",
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
		return r.Remove(paths)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
