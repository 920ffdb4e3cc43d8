package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func SocialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "social",
		Short: "Social media commands",
	}

	cmd.AddCommand(socialPostCmd())
	cmd.AddCommand(socialHistoryCmd())
	return cmd
}

func socialPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post",
		Short: "Post the current quote to every configured provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			svc, err := a.SocialService()
			if err != nil {
				return err
			}

			summary, err := svc.PostAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%q — %s\n", summary.Quote.Text, summary.Quote.Author)
			fmt.Printf("Social posting complete: %d sent, %d skipped, %d failed\n",
				len(summary.Sent), len(summary.Skipped), len(summary.Failed))
			return nil
		},
	}
}

func socialHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent posting attempts from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			ledger, err := a.Ledger()
			if err != nil {
				return err
			}
			posts, err := ledger.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to read ledger: %w", err)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tPROVIDER\tQUOTE DATE\tSTATUS\tERROR")
			for _, p := range posts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.CreatedAt.Format("2006-01-02 15:04"), p.Provider, p.QuoteDate, p.Status, p.Error)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries to show")
	return cmd
}
