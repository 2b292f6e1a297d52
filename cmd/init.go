package cmd

import (
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty password store",
	Long: `Creates the store directory and an empty storage file.

init does not ask for a passphrase. The first ` + "`passage new`" + ` asks for
it twice and encrypts the store with it from then on.
Running init on an existing store leaves it untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.Init(cmd.Context(), env)
		if err != nil {
			return err
		}

		if !result.Created {
			printResult(cmd, ui.Done("Store already initialized at "+ui.Path.Sprint(result.StorageFile)))
			return nil
		}

		printResult(cmd, ui.Done("Store initialized at "+ui.Path.Sprint(result.StorageFile)))
		printResult(cmd, ui.Hint("Add your first entry with "+ui.Code.Sprint("passage new")))
		return nil
	},
}
