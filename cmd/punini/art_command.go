package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"punini/internal/coverart"
	"punini/internal/metadata"
)

func newArtCommand(ctx *commandContext) *cobra.Command {
	var protocolFlag string
	var widthFlag int

	cmd := &cobra.Command{
		Use:   "art <file>",
		Short: "Print the embedded cover art of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			meta, err := metadata.Probe(path)
			if err != nil {
				return fmt.Errorf("read tags: %w", err)
			}
			if meta.Picture == nil {
				return errors.New("file has no embedded picture")
			}

			img, err := coverart.Decode(meta.Picture.Data)
			if err != nil {
				return fmt.Errorf("decode picture: %w", err)
			}

			value := protocolFlag
			if value == "" {
				value = cfg.Art.Protocol
			}
			protocol := coverart.ParseProtocol(value)
			if protocol == coverart.ProtocolNone {
				return errors.New("no image-capable terminal detected (use --protocol to force one)")
			}

			width := widthFlag
			if width <= 0 {
				width = cfg.Art.MaxWidthCells
			}

			return coverart.Emit(cmd.OutOrStdout(), img, protocol, width)
		},
	}

	cmd.Flags().StringVar(&protocolFlag, "protocol", "", "Image protocol: auto, kitty, iterm, halfblocks")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Output width in terminal cells")
	return cmd
}
