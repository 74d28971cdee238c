package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbrown/pixelart"
	"github.com/wbrown/pixelart/imageutil"
)

const defaultTile = 32

func newStylizeCmd() *cobra.Command {
	var (
		input, output string
		stagesDir     string
		tile, amount  int
		thicken       int
		caption       bool
	)

	cmd := &cobra.Command{
		Use:   "stylize",
		Short: "Render a photo as pixel art with red block edges",
		Long: `Render a photo as an 800x800 pixel-art image whose block boundaries
are traced in red over a white background.

The tile count is taken from --tile, or looked up from --amount in the
tier table. An amount outside every tier gives tile 0, which skips
pixelation and traces the edges of the photo itself.`,
		Example: `  pixelart stylize -i photo.jpg -o art.png --tile 24
  pixelart stylize -i photo.jpg -o art.png --amount 5000 --caption
  pixelart stylize -i photo.jpg -o art.png --stages debug/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if caption && !cmd.Flags().Changed("amount") {
				return fmt.Errorf("--caption needs --amount")
			}
			if cmd.Flags().Changed("amount") {
				tile = cfg.Tiers.TileSize(amount)
				if tier, ok := cfg.Tiers.Lookup(amount); ok {
					logger.Debug("resolved tier", "amount", amount, "tier", tier.Name, "tile", tile)
				} else {
					logger.Warn("amount matches no tier, skipping pixelation", "amount", amount)
				}
			}

			opts := append(cfg.StylizerOptions(), pixelart.WithLogger(logger))
			if cmd.Flags().Changed("thicken") {
				opts = append(opts, pixelart.WithThickening(thicken))
			}
			stylizer := pixelart.NewStylizer(opts...)

			p := newProgress(logger)
			img, err := imageutil.LoadImage(input)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			stages, err := stylizer.StylizeStages(img, tile)
			if err != nil {
				return fmt.Errorf("stylize: %w", err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			result := stages.Final
			if caption {
				if result, err = pixelart.Caption(result, pixelart.AmountLabel(amount)); err != nil {
					return fmt.Errorf("caption: %w", err)
				}
			}

			if err := imageutil.SavePNG(result, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if stagesDir != "" {
				if err := stages.WriteDir(stagesDir); err != nil {
					return fmt.Errorf("write stages: %w", err)
				}
			}
			edges := imageutil.CountEdges(stages.Edges)
			p.done("stylized image", "tile", tile, "edges", edges)

			out := cmd.OutOrStdout()
			printSuccess(out, "Pixel art generated")
			printKeyValue(out, "Tile", styleNumber.Render(fmt.Sprint(tile)))
			printKeyValue(out, "Edges", styleNumber.Render(fmt.Sprint(edges)))
			printFile(out, output)
			if stagesDir != "" {
				printFile(out, stagesDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG")
	cmd.Flags().IntVar(&tile, "tile", defaultTile, "pixel-art blocks per side, 0 to skip pixelation")
	cmd.Flags().IntVar(&amount, "amount", 0, "target amount, mapped to a tile count by the tier table")
	cmd.Flags().BoolVar(&caption, "caption", false, "append the target amount below the image")
	cmd.Flags().StringVar(&stagesDir, "stages", "", "directory to write every intermediate stage to")
	cmd.Flags().IntVar(&thicken, "thicken", 0, "also compute edges dilated by a KxK kernel (written with --stages)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("tile", "amount")

	return cmd
}
