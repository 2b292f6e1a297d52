package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"ls"},
	Short:   "List entry names",
	Long: `Prints the name of every entry, one per line, in sorted order.

An optional glob pattern filters the names, e.g. 'work/**'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		opts := workflows.ListOptions{}
		if len(args) == 1 {
			opts.Pattern = args[0]
		}

		env, err := envFactory(cmd)
		if err != nil {
			return err
		}

		result, err := workflows.List(cmd.Context(), env, opts)
		if err != nil {
			return err
		}

		for _, name := range result.Names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		Logger.Infof("Listed %d of %d entries", len(result.Names), result.Total)
		return nil
	},
}
