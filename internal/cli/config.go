package cli

import (
	"github.com/spf13/cobra"

	"lgit/internal/config"
)

var configAuthor string

var configCmd = &cobra.Command{
	Use:   "config --author <name>",
	Short: "Set the author identity used for commits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		return config.WriteAuthor(r.FS, r.Config, configAuthor)
	},
}

func init() {
	configCmd.Flags().StringVar(&configAuthor, "author", "", "author identity")
	cobra.CheckErr(configCmd.MarkFlagRequired("author"))
	rootCmd.AddCommand(configCmd)
}
