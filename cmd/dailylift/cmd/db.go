package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/internal/db"
)

func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Social ledger database commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending ledger migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			// opening the ledger migrates it
			if _, err := a.Ledger(); err != nil {
				return err
			}
			fmt.Println("Ledger is up to date")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List ledger migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			if _, err := a.Ledger(); err != nil {
				return err
			}
			statuses, err := db.Status(cmd.Context(), a.DB.DB, a.Cfg.DBDriver)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rollback",
		Short: "Roll back the last ledger migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			if _, err := a.Ledger(); err != nil {
				return err
			}
			version, err := db.MigrateDown(cmd.Context(), a.DB.DB, a.Cfg.DBDriver)
			if err != nil {
				return err
			}
			fmt.Printf("Rolled back one migration, ledger now at version %d\n", version)
			return nil
		},
	})

	return cmd
}
