package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func BuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			result, err := a.BuildService.Build(cmd.Context())
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			fmt.Printf("Build complete: %d posts, %d files copied, %d sitemap URLs (%s)\n",
				result.Posts, result.FilesCopied, result.SitemapURLs, result.Duration.Round(time.Millisecond))
			return nil
		},
	}
}
