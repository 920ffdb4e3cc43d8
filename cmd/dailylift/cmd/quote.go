package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/internal/service"
)

func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Daily quote commands",
	}

	cmd.AddCommand(quoteFetchCmd())
	cmd.AddCommand(quoteTodayCmd())
	return cmd
}

func quoteFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch today's quote and add it to the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			result := a.QuoteFetcher.Fetch(cmd.Context())
			for _, attempt := range result.Failures {
				fmt.Printf("%s failed: %v\n", attempt.Provider, attempt.Err)
			}

			recorded, err := a.QuoteService.Record(cmd.Context(), result.Quote, time.Now())
			if err != nil {
				return err
			}

			if recorded.Added {
				fmt.Printf("Added to collection (total: %d quotes)\n", recorded.CollectionTotal)
			} else {
				fmt.Println("Quote already in collection, skipping")
			}
			fmt.Printf("Today's quote (%s): %q — %s\n", result.Provider, result.Quote.Text, result.Quote.Author)
			return nil
		},
	}
}

func quoteTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print the quote of the day from the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			q := service.QuoteOfDay(a.QuoteService.Collection(), time.Now())
			fmt.Printf("%q — %s\n", q.Text, q.Author)
			return nil
		},
	}
}
