package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/internal/lint"
)

func LintCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check source HTML, CSS, JS, JSON and YAML for common mistakes",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := lint.New(root).Run()
			if err != nil {
				return err
			}

			for _, kind := range []string{"html", "js", "yaml", "json", "css"} {
				fmt.Printf("  %-5s files: %d\n", kind, report.Counts[kind])
			}
			for _, issue := range report.Issues {
				fmt.Fprintln(os.Stderr, "  "+issue.String())
			}
			fmt.Printf("\nResults: %d files checked, %d errors, %d warnings\n",
				report.Checked, report.Errors(), report.Warnings())

			if report.Errors() > 0 {
				return fmt.Errorf("lint failed with %d errors", report.Errors())
			}
			fmt.Println("Lint passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root")
	return cmd
}
