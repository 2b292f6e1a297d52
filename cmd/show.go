package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var showOnScreen bool

var showCmd = &cobra.Command{
	Use:   "show <entry>",
	Short: "Copy an entry's password to the clipboard",
	Long: `Decrypts the entry and copies its password to the clipboard.
The clipboard is cleared again after a few seconds, unless you have
copied something else in the meantime.

Use --on-screen to print the password instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.Show(cmd.Context(), env, workflows.ShowOptions{
			Name:     args[0],
			OnScreen: showOnScreen,
		})
		if err != nil {
			return err
		}

		if result.Copied {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Done(fmt.Sprintf("Copied %s to the clipboard, clearing in %s",
				ui.Entry.Sprint(result.Name), result.ClearAfter)))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showOnScreen, "on-screen", false, "print the password instead of copying it")
}
