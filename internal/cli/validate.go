package cli

import (
	"fmt"

	"github.com/saeidalz13/battleship-sim/internal/scenario"
	"github.com/spf13/cobra"
)

// validateCmd checks scenario files against the schema without running them.
var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>...",
	Short: "Validate scenario files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if _, err := scenario.Load(path); err != nil {
				errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
				failed++
				continue
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d scenario files are invalid", failed, len(args))
		}
		return nil
	},
}
