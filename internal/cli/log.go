package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lgit/internal/repo/store/commit"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the commit history, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		records, err := r.Log()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, rec := range records {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "commit %s\n", rec.Key)
			fmt.Fprintf(out, "Author: %s\n", rec.Author)
			if t, err := commit.KeyTime(rec.Key); err == nil {
				fmt.Fprintf(out, "Date: %s\n", t.Format("Mon Jan 02 15:04:05 2006"))
			}
			fmt.Fprintln(out)
			for _, line := range strings.Split(rec.Message, "\n") {
				fmt.Fprintf(out, "\t%s\n", line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
