package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:          "login",
		Short:        "Authenticate against the Dev-Hub backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}

			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				username = strings.TrimSpace(line)
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			passwordBytes, err := term.ReadPassword(0)
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := h.Login(cmd.Context(), username, string(passwordBytes)); err != nil {
				return err
			}
			identity, _ := h.Session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (admin: %v)\n", identity.Email, identity.IsAdmin)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login email")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Discard the stored session",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}
			if err := h.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
