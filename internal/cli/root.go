// Package cli is the devhub command line front end. It drives the hub state
// containers the same way the web dashboard would: every mutation goes
// through the command handlers and ends with a catalog refresh.
package cli

import (
	"github.com/alshawwaf/dev-hub/internal/hub"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ServerURL string
}

// NewRootCommand creates the root command for the devhub CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "devhub",
		Short: "Dev-Hub - browse and manage the application catalog",
	}

	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "http://localhost:9090", "Dev-Hub API base URL")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

func newHub(opts *RootOptions) (*hub.Hub, error) {
	store, err := hub.DefaultFileTokenStore()
	if err != nil {
		return nil, err
	}
	return hub.New(opts.ServerURL, store), nil
}
