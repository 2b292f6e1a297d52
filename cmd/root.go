package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/passage/internal/clipboard"
	"github.com/PolarWolf314/passage/internal/configs"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
	logger "github.com/PolarWolf314/passage/internal/logging"
	"github.com/PolarWolf314/passage/internal/ui"
	"github.com/PolarWolf314/passage/internal/utils"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	verbose   bool
	debug     bool
	noKeyring bool
	Logger    logger.Logger

	// envFactory builds the workflow environment for a command. Tests
	// replace it with SetEnvFactory.
	envFactory = newEnv

	RootCmd = &cobra.Command{
		Use:   "passage",
		Short: "passage - an encrypted password store",
		Long: `passage keeps your passwords in a single file encrypted with a passphrase.

Entries are created with 'passage new' and read back with 'passage show',
which copies the password to the clipboard for a few seconds.
Hooks in the hooks directory run before the store is read and after it is
written, e.g. to sync the store with git.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Running %s with verbose=%t, debug=%t, no-keyring=%t", cmd.Name(), verbose, debug, noKeyring)
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, figure.NewFigure("passage", "standard", true).String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Hint("Run "+ui.Code.Sprint("passage --help")+" to see available commands"))
		},
	}
)

func init() {
	RootCmd.SetVersionTemplate("passage {{.Version}}\n")

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&noKeyring, "no-keyring", false, "neither read nor store the passphrase in the OS keyring")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(newCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(keyringCmd)
	RootCmd.AddCommand(clipboardClearCmd)
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		printError(RootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// newEnv resolves settings and config and wires the production
// dependencies.
func newEnv(cmd *cobra.Command) (*workflows.Env, error) {
	settings, err := configs.NewSettings()
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Base directory: %s", settings.BaseDir)

	config, err := configs.LoadConfig(settings.ConfigFile)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Codec: %s, clipboard timeout: %s, keyring: %t", config.Crypto.Codec, config.Clipboard.Timeout, config.Keyring.Enabled)

	return workflows.NewEnv(workflows.EnvOptions{
		Settings:  *settings,
		Config:    config,
		Prompt:    utils.NewConsole(os.Stdin, cmd.ErrOrStderr()),
		Log:       Logger,
		NoKeyring: noKeyring,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Progress:  progressTo(cmd.ErrOrStderr()),
	})
}

// printError renders err the way every command reports failures, with a
// hint for errors the user can fix.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.Error.Sprint("Error:"), err)

	var postSave *workflows.PostSaveError
	switch {
	case errors.Is(err, kerrors.ErrStorageUninitialized):
		fmt.Fprintln(w, ui.Hint("Run "+ui.Code.Sprint("passage init")+" to create the store"))
	case errors.As(err, &postSave):
		fmt.Fprintln(w, ui.Hint("Check the "+ui.Hook.Sprint("post_save")+" hook, the store itself was updated"))
	case errors.Is(err, kerrors.ErrDecryptionFailed) && !noKeyring:
		fmt.Fprintln(w, ui.Hint("If the cached passphrase is out of date, run "+ui.Code.Sprint("passage keyring forget")))
	case errors.Is(err, kerrors.ErrClipboardUnavailable):
		fmt.Fprintln(w, ui.Hint("Use "+ui.Flag.Sprint("--on-screen")+" to print the password instead"))
	case errors.Is(err, kerrors.ErrStorageLocked):
		fmt.Fprintln(w, ui.Hint("Another passage command is modifying the store, try again"))
	case errors.Is(err, kerrors.ErrInvalidConfig):
		fmt.Fprintln(w, ui.Hint("Fix the values in config.toml, see "+ui.Code.Sprint("passage info")))
	}
}

// Helper functions for testing

// SetEnvFactory replaces how commands build their environment.
func SetEnvFactory(f func(cmd *cobra.Command) (*workflows.Env, error)) {
	envFactory = f
}

// SetClipboardFactory replaces the clipboard used by clipboard-clear.
func SetClipboardFactory(f func() clipboard.Clipboard) {
	clipboardFactory = f
}

// ResetGlobalState resets flags and the env factory between tests.
func ResetGlobalState() {
	verbose = false
	debug = false
	noKeyring = false
	envFactory = newEnv
	clipboardFactory = systemClipboard
	Logger = logger.Logger{}

	resetFlags(RootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
