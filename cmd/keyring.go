package cmd

import (
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var keyringCmd = &cobra.Command{
	Use:   "keyring",
	Short: "Manage the passphrase cached in the OS keyring",
}

var keyringCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether the passphrase is cached",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.KeyringCheck(cmd.Context(), env)
		if err != nil {
			return err
		}

		if result.Cached {
			printResult(cmd, ui.Done("Passphrase is cached in the keyring"))
			return nil
		}
		printResult(cmd, ui.Failed("No passphrase is cached"))
		return nil
	},
}

var keyringForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Remove the cached passphrase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.KeyringForget(cmd.Context(), env)
		if err != nil {
			return err
		}

		if result.Removed {
			printResult(cmd, ui.Done("Cached passphrase removed"))
			return nil
		}
		printResult(cmd, ui.Hint("No passphrase was cached"))
		return nil
	},
}

func init() {
	keyringCmd.AddCommand(keyringCheckCmd)
	keyringCmd.AddCommand(keyringForgetCmd)
}
