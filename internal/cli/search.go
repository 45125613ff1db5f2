package cli

import (
	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/display"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a landscape by id, name, organization, or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	view, err := resolveView()
	if err != nil {
		return err
	}
	c := catalogFor(view)
	l := display.Landscape{
		Catalog: c,
		Entries: catalog.Search(c.All(), query),
	}
	if view == config.ViewSmall && len(l.Entries) > 0 {
		l.Specs = detectSpecs()
	}
	display.Search(cmd.OutOrStdout(), l, query, globalJSON)
	return nil
}
