package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/alshawwaf/dev-hub/internal/hub"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var search string
	var category string
	var grouped bool

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List the application catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHub(rootOpts)
			if err != nil {
				return err
			}
			if err := h.Catalog.Refresh(cmd.Context()); err != nil {
				return err
			}
			records := h.Catalog.Snapshot()
			filtered := hub.FilterApps(records, search, category)

			out := cmd.OutOrStdout()
			if len(filtered) == 0 {
				fmt.Fprintln(out, "No apps found")
				return nil
			}
			if grouped {
				groups := hub.PartitionApps(filtered, hub.PlaygroundMarker)
				if len(groups.Standalone) > 0 {
					fmt.Fprintln(out, "Standalone:")
					printApps(out, groups.Standalone)
				}
				if len(groups.Playground) > 0 {
					fmt.Fprintln(out, "Playground sub-projects:")
					printApps(out, groups.Playground)
				}
				return nil
			}
			printApps(out, filtered)
			fmt.Fprintf(out, "Categories: %v\n", hub.Categories(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text search over name and description")
	cmd.Flags().StringVar(&category, "category", hub.AllCategory, "category to filter by")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "partition output into standalone apps and playground sub-projects")
	return cmd
}

func printApps(out io.Writer, apps []domain.Application) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTATUS\tURL")
	for _, app := range apps {
		status := "dev"
		if app.IsLive {
			status = "live"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", app.ID, app.Name, app.Category, status, app.URL)
	}
	w.Flush()
}
