package cli

import (
	"github.com/shayne-snap/llmscape/internal/config"
	"github.com/shayne-snap/llmscape/internal/display"

	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of a landscape",
	Long:  "Lists the llm landscape, or the slm landscape optionally narrowed to one category (llm, vision, rag, audio, genai).",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Category for the slm view: llm, vision, rag, audio, genai")
}

func runList(cmd *cobra.Command, args []string) error {
	view, err := resolveView()
	if err != nil {
		return err
	}
	if listCategory != "" && globalView == "" {
		view = config.ViewSmall
	}
	var l display.Landscape
	if view == config.ViewSmall {
		l, err = landscape(view, listCategory, detectSpecs())
	} else {
		l, err = landscape(view, listCategory, nil)
	}
	if err != nil {
		return err
	}
	display.List(cmd.OutOrStdout(), l, globalJSON)
	return nil
}
