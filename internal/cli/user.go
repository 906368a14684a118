package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Credential management commands (admin only)",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserAddCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered usernames",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserListResult

			if err := client.Get("/api/v1/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserAddCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new login credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			if pass == "" {
				fmt.Print("Password: ")
				secret, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				pass = string(secret)
			}

			req := map[string]string{
				"username": user,
				"password": pass,
			}

			if err := client.Post("/api/v1/users", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("User %q added", user))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
