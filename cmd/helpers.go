package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// progressTo returns the repository's progress callback for w. On a file it
// shows a spinner, which stays silent when the file is not a terminal. Any
// other writer gets the message as a plain line. Verbose and debug mode log
// the message instead.
func progressTo(w io.Writer) func(message string) func() {
	return func(message string) func() {
		if verbose || debug {
			Logger.Infof("%s", message)
			return func() {}
		}

		f, ok := w.(*os.File)
		if !ok {
			fmt.Fprintln(w, message)
			return func() {}
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
		s.Suffix = " " + message
		// Ignore color errors - continue without colored spinner if it fails.
		_ = s.Color("cyan")
		s.Start()

		return s.Stop
	}
}

// printResult writes a status line to the command's stdout.
func printResult(cmd *cobra.Command, line string) {
	fmt.Fprint(cmd.OutOrStdout(), ui.EnsureNewline(line))
}
