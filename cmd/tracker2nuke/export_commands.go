package main

import (
	"context"

	"github.com/spf13/cobra"

	"tracker2nuke/internal/bridge"
	"tracker2nuke/internal/clipboard"
	"tracker2nuke/internal/scene"
)

// outputFlags selects where a generated script is delivered.
type outputFlags struct {
	path      string
	clipboard bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "Write the script to a file (- for stdout)")
	cmd.Flags().BoolVar(&o.clipboard, "clipboard", false, "Copy the script to the system clipboard")
}

func (o *outputFlags) sink(ctx *commandContext, cmd *cobra.Command) clipboard.Sink {
	useClipboard := o.clipboard
	if cfg := ctx.configValue(); cfg != nil && cfg.Output.Clipboard {
		useClipboard = true
	}
	return clipboard.Target(o.path, useClipboard, cmd.OutOrStdout())
}

type exportAction func(*bridge.Bridge, context.Context, ...*scene.Scene) (bridge.Result, error)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tracks as Nuke Tracker4 nodes",
	}

	exportCmd.AddCommand(newExportSubcommand(ctx, "all", "Export all tracks of the active object", func(b *bridge.Bridge, c context.Context, scenes ...*scene.Scene) (bridge.Result, error) {
		if cfg := ctx.configValue(); cfg != nil && cfg.Output.SelectedOnly {
			return b.ExportSelected(c, scenes...)
		}
		return b.ExportAll(c, scenes...)
	}))
	exportCmd.AddCommand(newExportSubcommand(ctx, "selected", "Export only the selected tracks of the active object", (*bridge.Bridge).ExportSelected))
	exportCmd.AddCommand(newExportSubcommand(ctx, "corners", "Export the pattern corners of the selected track as four tracks", (*bridge.Bridge).ExportPatternCorners))
	exportCmd.AddCommand(newExportSubcommand(ctx, "plane", "Export the corners of the active plane track as four tracks", (*bridge.Bridge).ExportPlaneTrack))

	return exportCmd
}

func newExportSubcommand(ctx *commandContext, use, short string, action exportAction) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   use + " <scene>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := scene.LoadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			return ctx.withBridge(cmd, out.sink(ctx, cmd), func(b *bridge.Bridge) error {
				res, err := action(b, cmd.Context(), scenes...)
				if err != nil {
					return err
				}
				return printReport(cmd.ErrOrStderr(), res)
			})
		},
	}
	out.register(cmd)
	return cmd
}
