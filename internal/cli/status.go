package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lgit/internal/repo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show staged, unstaged and untracked paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "On branch master")
		fmt.Fprintln(out)

		hasCommits, err := r.HasCommits()
		if err != nil {
			return err
		}
		if !hasCommits {
			fmt.Fprintln(out, "No commits yet")
			fmt.Fprintln(out)
		}

		rep, err := r.Status()
		if err != nil {
			return err
		}
		printStatus(out, rep)
		return nil
	},
}

func printStatus(out io.Writer, rep *repo.Report) {
	if len(rep.StagedForCommit) > 0 {
		fmt.Fprintln(out, "Changes to be committed:")
		fmt.Fprintln(out, `  (use "lgit reset HEAD <file>..." to unstage)`)
		fmt.Fprintln(out)
		for _, p := range rep.StagedForCommit {
			fmt.Fprintf(out, "\t modified: %s\n", p)
		}
		fmt.Fprintln(out)
	}

	if len(rep.NotStaged) > 0 {
		fmt.Fprintln(out, "Changes not staged for commit:")
		fmt.Fprintln(out, `  (use "lgit add <file>..." to update what will be committed)`)
		fmt.Fprintln(out, `  (use "lgit checkout -- <file>..." to discard changes in working directory)`)
		fmt.Fprintln(out)
		for _, c := range rep.NotStaged {
			fmt.Fprintf(out, "\t %s: %s\n", c.Kind, c.Path)
		}
		fmt.Fprintln(out)
	}

	if len(rep.Untracked) > 0 {
		fmt.Fprintln(out, "Untracked files:")
		fmt.Fprintln(out, `  (use "lgit add <file>..." to include in what will be committed)`)
		fmt.Fprintln(out)
		for _, p := range rep.Untracked {
			fmt.Fprintf(out, "\t%s\n", p)
		}
		fmt.Fprintln(out)
		if len(rep.StagedForCommit) == 0 {
			fmt.Fprintln(out, `nothing added to commit but untracked files present (use "lgit add" to track)`)
		}
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
