package cmd

import (
	"github.com/josephlewis42/simplesh/core/config"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config path.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		_, err := config.Initialize(cfgPath, diagnostics(cmd))
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
