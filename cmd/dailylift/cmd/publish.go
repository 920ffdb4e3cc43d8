package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func PublishCmd() *cobra.Command {
	var build bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the output directory to S3-compatible storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			if build {
				_, err := a.BuildService.Build(cmd.Context())
				if err != nil {
					return fmt.Errorf("build failed: %w", err)
				}
			}

			svc, err := a.PublishService(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}

			n, err := svc.Publish(cmd.Context(), a.Cfg.DistPath)
			if err != nil {
				return fmt.Errorf("publish failed after %d files: %w", n, err)
			}
			fmt.Printf("Published %d files\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&build, "build", false, "build the site before publishing")
	return cmd
}
