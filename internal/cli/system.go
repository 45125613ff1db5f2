package cli

import (
	"github.com/shayne-snap/llmscape/internal/display"
	"github.com/shayne-snap/llmscape/internal/hardware"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show the host RAM and CPU used for small-model fit badges",
	Args:  cobra.NoArgs,
	RunE:  runSystem,
}

func runSystem(cmd *cobra.Command, args []string) error {
	specs, err := hardware.Detect()
	if err != nil {
		return err
	}
	display.System(cmd.OutOrStdout(), specs, globalJSON)
	return nil
}
