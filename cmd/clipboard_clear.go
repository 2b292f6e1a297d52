package cmd

import (
	"time"

	"github.com/PolarWolf314/passage/internal/clipboard"
	"github.com/spf13/cobra"
)

var clearAfter time.Duration

// clipboardClearCmd is started detached by show. It is not meant to be run
// by hand.
var clipboardClearCmd = &cobra.Command{
	Use:    clipboard.ClearCommand,
	Short:  "Clear the clipboard if it still holds a copied password",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clearer := clipboard.Clearer{Clipboard: clipboardFactory()}

		cleared, err := clearer.ClearAfter(cmd.Context(), cmd.InOrStdin(), clearAfter)
		if err != nil {
			return err
		}
		Logger.Debugf("Clipboard cleared: %t", cleared)
		return nil
	},
}

// clipboardFactory is replaced in tests.
var clipboardFactory = systemClipboard

func systemClipboard() clipboard.Clipboard { return clipboard.System{} }

func init() {
	clipboardClearCmd.Flags().DurationVar(&clearAfter, "after", clipboard.DefaultTimeout, "delay before clearing")
}
