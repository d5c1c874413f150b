package cli

import "github.com/spf13/cobra"

var commitMessage string

var commitCmd = &cobra.Command{
	Use:   "commit -m <message>",
	Short: "Record the staged tree as a new commit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		_, err = r.Commit(commitMessage)
		return err
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit message")
	cobra.CheckErr(commitCmd.MarkFlagRequired("message"))
	rootCmd.AddCommand(commitCmd)
}
