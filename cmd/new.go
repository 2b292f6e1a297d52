package cmd

import (
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var newForce bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Add a new entry",
	Long: `Prompts for an entry name and its password and adds them to the store.

If the entry already exists you are asked before it is overwritten.
When input is not a terminal, --force is required to overwrite.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting new command")

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.NewEntry(cmd.Context(), env, workflows.NewEntryOptions{Force: newForce})
		if err != nil {
			return err
		}

		switch {
		case result.Declined:
			printResult(cmd, ui.Hint("Kept existing entry "+ui.Entry.Sprint(result.Name)))
		case result.Overwritten:
			printResult(cmd, ui.Done("Entry "+ui.Entry.Sprint(result.Name)+" overwritten"))
		default:
			printResult(cmd, ui.Done("Entry "+ui.Entry.Sprint(result.Name)+" added"))
		}
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite an existing entry without asking")
}
