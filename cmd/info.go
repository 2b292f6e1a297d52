package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where the store is kept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.Info(cmd.Context(), env)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Storage file: %s\n", result.StorageFile)
		Logger.Infof("Hooks directory: %s", result.HooksDir)
		Logger.Infof("Config file: %s", result.ConfigFile)
		Logger.Infof("Initialized: %t", result.Initialized)
		return nil
	},
}
