package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var bootstrapAdminCmd = &cobra.Command{
	Use:   "bootstrap-admin",
	Short: "Create the administrator account if it does not exist",
	Long: `Create the administrator account. Only one administrator can exist;
running the command again reports the existing account and changes nothing.
Credentials default to admin.username and admin.password from configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.migrate(cmd.Context()); err != nil {
			return err
		}

		username := firstNonEmpty(adminUsername, a.cfg.Admin.Username)
		password := firstNonEmpty(adminPassword, a.cfg.Admin.Password)
		if password == "" {
			return errors.New("an administrator password is required (--password or GT_ADMIN_PASSWORD)")
		}

		admin, created, err := a.users.BootstrapAdmin(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		if created {
			cmd.Printf("Created administrator %q (id %d)\n", admin.Username, admin.ID)
		} else {
			cmd.Println("An administrator already exists; nothing changed")
		}
		return nil
	},
}

func init() {
	bootstrapAdminCmd.Flags().StringVar(&adminUsername, "username", "", "administrator username")
	bootstrapAdminCmd.Flags().StringVar(&adminPassword, "password", "", "administrator password")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
