package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	newUsername   string
	newPassword   string
	actorUsername string
	actorPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage member accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a member account",
	Long: `Create a member account. The command logs in as the administrator,
using --admin-username and --admin-password or the configured admin credentials,
so the same rules apply as for the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newUsername == "" || newPassword == "" {
			return errors.New("--username and --password are required")
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		actor, err := a.users.Authenticate(cmd.Context(),
			firstNonEmpty(actorUsername, a.cfg.Admin.Username),
			firstNonEmpty(actorPassword, a.cfg.Admin.Password))
		if err != nil {
			return err
		}

		user, err := a.users.CreateUser(cmd.Context(), actor, newUsername, newPassword)
		if err != nil {
			return err
		}

		cmd.Printf("Created member %q (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUsername, "username", "", "username of the new member")
	userCreateCmd.Flags().StringVar(&newPassword, "password", "", "password of the new member")
	userCreateCmd.Flags().StringVar(&actorUsername, "admin-username", "", "administrator username (default: admin.username)")
	userCreateCmd.Flags().StringVar(&actorPassword, "admin-password", "", "administrator password (default: admin.password)")

	userCmd.AddCommand(userCreateCmd)
}
