package cmd

import (
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry>",
	Short: "Change an entry's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command")

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.Edit(cmd.Context(), env, workflows.EditOptions{Name: args[0]})
		if err != nil {
			return err
		}

		printResult(cmd, ui.Done("Entry "+ui.Entry.Sprint(result.Name)+" updated"))
		return nil
	},
}
