package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wbrown/pixelart"
)

// newRootCmd builds the command tree. The persistent pre-run attaches a
// logger and the loaded configuration to the command context.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "pixelart",
		Short: "Render photos as dot grids or pixel art with traced edges",
		Long: `pixelart turns a photo into one of two coloring templates:

  dot      a grid of black-ringed white cells the size of the photo
  stylize  an 800x800 pixel-art image with red block edges on white

The pixel-art tile count is given directly with --tile or derived from a
target amount with --amount using the tier table (see "pixelart tiers").`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg := pixelart.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = pixelart.LoadConfig(configPath); err != nil {
					return err
				}
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	root.AddCommand(newDotCmd())
	root.AddCommand(newStylizeCmd())
	root.AddCommand(newTiersCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func versionString() string {
	return fmt.Sprintf("pixelart %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString())
		},
	}
}
