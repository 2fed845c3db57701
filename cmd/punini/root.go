package main

import (
	"github.com/spf13/cobra"

	"punini/internal/library"
	"punini/internal/player"
	"punini/internal/tui"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "punini",
		Short:         "Terminal music player with synced lyrics and cover art",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newPlayCommand(ctx))
	rootCmd.AddCommand(newArtCommand(ctx))
	rootCmd.AddCommand(newLyricsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// runPlayer opens the library and hands the terminal to the full-screen
// interface. Logs go to the file only while the UI owns the screen.
func runPlayer(ctx *commandContext) error {
	cfg, logger, err := ctx.newLogger(true)
	if err != nil {
		return err
	}

	store, err := library.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	scanner := library.NewScanner(cfg, store, logger)
	engine := player.New(cfg, nil, logger)
	defer engine.Close()

	return tui.Run(cfg, store, scanner, engine, logger)
}
