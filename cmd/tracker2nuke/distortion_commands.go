package main

import (
	"github.com/spf13/cobra"

	"tracker2nuke/internal/bridge"
	"tracker2nuke/internal/clipboard"
	"tracker2nuke/internal/scene"
)

func newDistortionCommand(ctx *commandContext) *cobra.Command {
	distortionCmd := &cobra.Command{
		Use:   "distortion",
		Short: "Move lens distortion between the camera and Nuke",
	}
	distortionCmd.AddCommand(newDistortionCopyCommand(ctx))
	distortionCmd.AddCommand(newDistortionPasteCommand(ctx))
	return distortionCmd
}

func newDistortionCopyCommand(ctx *commandContext) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "copy <scene>",
		Short: "Render the camera distortion as a LensDistortion2 node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			return ctx.withBridge(cmd, out.sink(ctx, cmd), func(b *bridge.Bridge) error {
				res, err := b.CopyDistortion(cmd.Context(), s)
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

func newDistortionPasteCommand(ctx *commandContext) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "paste <scene>",
		Short: "Apply a LensDistortion2 node to the scene camera",
		Long: "Reads a Nuke LensDistortion2 node from the system clipboard (or --from) and\n" +
			"writes its k1/k2 coefficients into the scene camera, switching it to the NUKE model.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scene.SaveOptions{}
			if cfg := ctx.configValue(); cfg != nil {
				opts.Backup = cfg.Scene.BackupOnWrite
			}
			src := clipboard.Origin(from, cmd.InOrStdin())
			// The paste never delivers a script, so no sink is needed.
			return ctx.withBridge(cmd, nil, func(b *bridge.Bridge) error {
				res, err := b.PasteDistortion(cmd.Context(), args[0], src, opts)
				if err != nil {
					return err
				}
				return printReport(cmd.ErrOrStderr(), res)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Read the node from a file (- for stdin) instead of the clipboard")
	return cmd
}
