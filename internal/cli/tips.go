package cli

import (
	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/display"

	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips [category]",
	Short: "Show the tips panel for one category, or for all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTips,
}

func runTips(cmd *cobra.Command, args []string) error {
	cats := catalog.Categories
	if len(args) == 1 {
		c, err := catalog.ParseCategory(args[0])
		if err != nil {
			return err
		}
		cats = []catalog.Category{c}
	}
	display.Tips(cmd.OutOrStdout(), cats, globalJSON)
	return nil
}
