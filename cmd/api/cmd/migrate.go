package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.migrate(cmd.Context()); err != nil {
			return err
		}

		version, err := a.db.MigrationManager().GetCurrentVersion(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Schema is at version %s\n", version)
		return nil
	},
}
