package cmd

import (
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <entry>",
	Aliases: []string{"rm"},
	Short:   "Remove an entry",
	Long: `Removes an entry from the store after asking for confirmation.
When input is not a terminal, --yes is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.Remove(cmd.Context(), env, workflows.RemoveOptions{
			Name: args[0],
			Yes:  removeYes,
		})
		if err != nil {
			return err
		}

		if result.Declined {
			printResult(cmd, ui.Hint("Kept entry "+ui.Entry.Sprint(result.Name)))
			return nil
		}
		printResult(cmd, ui.Done("Entry "+ui.Entry.Sprint(result.Name)+" removed"))
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "remove without asking for confirmation")
}
