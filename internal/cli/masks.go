package cli

import (
	"fmt"

	"github.com/saeidalz13/battleship-sim/internal/render"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
	"github.com/spf13/cobra"
)

// masksCmd prints the skill stencils.
var masksCmd = &cobra.Command{
	Use:   "masks [kind...]",
	Short: "Print the 5x5 skill masks",
	Long: `Print the cone, cross and diamond stencils as 0/1 grids. The bracketed cell is
the anchor that lands on the skill origin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := mb.MaskKinds()
		if len(args) > 0 {
			kinds = make([]mb.MaskKind, 0, len(args))
			for _, arg := range args {
				k, err := mb.ParseMaskKind(arg)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}
		}

		cache := mb.NewMaskCache()
		for i, k := range kinds {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if err := render.Mask(cmd.OutOrStdout(), k, cache.Get(k)); err != nil {
				return err
			}
		}
		return nil
	},
}
