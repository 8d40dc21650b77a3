package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/alshawwaf/dev-hub/internal/hub"
	"github.com/spf13/cobra"
)

func appInputFlags(cmd *cobra.Command, input *hub.AppInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Description, "description", "", "what the application does")
	cmd.Flags().StringVar(&input.URL, "url", "", "live application URL")
	cmd.Flags().StringVar(&input.GithubURL, "github-url", "", "source repository URL")
	cmd.Flags().StringVar(&input.Category, "category", "", "grouping label")
	cmd.Flags().StringVar(&input.Icon, "icon", "app", "emoji or icon name")
	cmd.Flags().BoolVar(&input.IsLive, "live", true, "whether the application is live")
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var input hub.AppInput

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Add an application to the catalog (admin)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}
			if err := h.Commands.Create(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q\n", input.Name)
			return nil
		},
	}

	appInputFlags(cmd, &input)
	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var input hub.AppInput

	cmd := &cobra.Command{
		Use:          "update <app-id>",
		Short:        "Update a catalog entry (admin)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid app id %q", args[0])
			}
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}
			if err := h.Commands.Update(cmd.Context(), id, input); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated app %d\n", id)
			return nil
		},
	}

	appInputFlags(cmd, &input)
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "delete <app-id>",
		Short:        "Remove a catalog entry (admin)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid app id %q", args[0])
			}
			confirmed := yes
			if !confirmed {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete app %d? [y/N] ", id)
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				confirmed = strings.EqualFold(strings.TrimSpace(line), "y")
			}
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}
			if err := h.Commands.Delete(cmd.Context(), id, confirmed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted app %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
