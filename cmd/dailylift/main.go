package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/cmd/dailylift/cmd"
	"github.com/dailylift/dailylift/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "dailylift",
		Short:         "Build, feed and publish the DailyLift site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.BuildCmd())
	rootCmd.AddCommand(cmd.QuoteCmd())
	rootCmd.AddCommand(cmd.SocialCmd())
	rootCmd.AddCommand(cmd.CalcCmd())
	rootCmd.AddCommand(cmd.ServeCmd())
	rootCmd.AddCommand(cmd.PublishCmd())
	rootCmd.AddCommand(cmd.LintCmd())
	rootCmd.AddCommand(cmd.DBCmd())

	err := rootCmd.Execute()
	logger.Flush()
	if err != nil {
		cmd.PrintError(err)
		os.Exit(1)
	}
}
