package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbrown/pixelart"
	"github.com/wbrown/pixelart/imageutil"
)

func newDotCmd() *cobra.Command {
	var input, output string
	var size int

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render a photo as a grid of ringed cells",
		Example: `  pixelart dot -i photo.jpg -o dots.png
  pixelart dot -i photo.jpg -o dots.png --size 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("size") {
				size = configFromContext(ctx).DotSize
			}

			p := newProgress(logger)
			img, err := imageutil.LoadImage(input)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			dots, err := pixelart.DotGrid(img, size)
			if err != nil {
				return fmt.Errorf("dot grid: %w", err)
			}
			if err := imageutil.SavePNG(dots, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			p.done("rendered dot grid", "size", size, "width", dots.Width(), "height", dots.Height())

			out := cmd.OutOrStdout()
			printSuccess(out, "Dot grid generated")
			printFile(out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG")
	cmd.Flags().IntVar(&size, "size", pixelart.DefaultDotSize, "cell size in pixels")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}
