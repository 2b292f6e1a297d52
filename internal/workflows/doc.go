// Package workflows provides high-level orchestration for passage commands.
//
// Each workflow implements one command's business logic on top of the
// store, passphrase, hooks and clipboard packages, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Builds an Env and calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Running the pre_load and post_save hooks
//   - Resolving the passphrase
//   - Locking, loading, mutating and saving the store
//   - Exposing a secret through the clipboard guard
//
// # Dependencies
//
// All state a workflow touches is carried by Env. There are no package
// level paths or handles, so tests build an Env over a temp directory with
// fake prompts, keyring and clipboard.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Show(ctx, env, opts)
//	if errors.Is(err, kerrors.ErrStorageUninitialized) {
//	    // Show user-friendly initialization message
//	}
package workflows
