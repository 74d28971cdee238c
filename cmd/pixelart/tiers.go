package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTiersCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the amount to tile count table",
		Example: `  pixelart tiers
  pixelart tiers --amount 12000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers := configFromContext(cmd.Context()).Tiers
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("amount") {
				tier, ok := tiers.Lookup(amount)
				if !ok {
					printKeyValue(out, "Tier", styleDim.Render("none"))
					printKeyValue(out, "Tile", styleNumber.Render("0"))
					return nil
				}
				printKeyValue(out, "Tier", tier.Name)
				printKeyValue(out, "Tile", styleNumber.Render(fmt.Sprint(tier.TileSize)))
				return nil
			}

			fmt.Fprintln(out, styleTitle.Render("Tiers"))
			for _, t := range tiers {
				printKeyValue(out, t.Name, fmt.Sprintf("%d-%d %s %s",
					t.Min, t.Max, styleDim.Render(iconArrow), styleNumber.Render(fmt.Sprint(t.TileSize))))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "show the tier for this amount")

	return cmd
}
