package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/display"

	"github.com/spf13/cobra"
)

var errInvalidCatalog = errors.New("catalog validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in landscapes for empty or duplicate ids and unknown categories",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := false
	for _, c := range []*catalog.Catalog{catalog.Large(), catalog.Small()} {
		if err := c.Validate(); err != nil {
			failed = true
			slog.Error("catalog invalid", "catalog", c.Name(), "err", err)
			fmt.Fprintf(out, "%s %s: %v\n", display.Bad.Sprint("✗"), c.Name(), err)
			continue
		}
		fmt.Fprintf(out, "%s %s: %d entries\n", display.Good.Sprint("✓"), c.Name(), c.Len())
	}
	if failed {
		return errInvalidCatalog
	}
	return nil
}
