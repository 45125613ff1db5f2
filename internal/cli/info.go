package cli

import (
	"fmt"

	"github.com/shayne-snap/llmscape/internal/display"
	"github.com/shayne-snap/llmscape/internal/hardware"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [id]",
	Short: "Show detailed information about an entry in either landscape",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	query := args[0]
	c, e, many, err := findEntry(query)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(many) > 0 {
		fmt.Fprintln(out, "\nMultiple entries found. Please be more specific:")
		for _, m := range many {
			fmt.Fprintf(out, "  - %s (%s)\n", m.ID, m.Name)
		}
		return nil
	}
	var specs *hardware.SystemSpecs
	if c.Categorised() {
		specs = detectSpecs()
	}
	display.Info(out, c, e, specs, globalJSON)
	return nil
}
