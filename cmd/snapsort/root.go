package main

import (
	"github.com/spf13/cobra"
)

const version = "0.3.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var watchFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "snapsort [downloads-dir]",
		Short:         "Sort screenshots into per-channel folders",
		Long:          "snapsort scans a downloads directory for screenshots, derives the channel and capture time from each filename, and files them under <downloads-dir>/<channel>/. With --watch it keeps running and sorts new screenshots as they settle on disk.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
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
			return runOrganize(cmd, ctx, args, watchFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Keep running and sort new screenshots as they appear")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
