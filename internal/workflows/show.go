package workflows

import (
	"context"
	"time"

	"github.com/PolarWolf314/passage/internal/clipboard"
	"github.com/PolarWolf314/passage/internal/hooks"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	Name string

	// OnScreen prints the password instead of copying it.
	OnScreen bool
}

// ShowResult contains the outcome of a show operation.
type ShowResult struct {
	Name string

	// Copied is true when the password went to the clipboard.
	Copied bool

	// ClearAfter is how long the clipboard keeps the password.
	ClearAfter time.Duration
}

// Show decrypts an entry and exposes its password, on screen or through
// the clipboard.
//
// Returns ErrStorageUninitialized before `passage init`.
// Returns ErrEntryNotFound if the entry does not exist.
// Returns ErrClipboardUnavailable or ErrClipboardClearNotScheduled when the
// clipboard cannot be used safely.
func Show(ctx context.Context, env *Env, opts ShowOptions) (*ShowResult, error) {
	sess, err := env.open(ctx, openOptions{event: hooks.ShowEntry})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	entry, err := sess.storage.Get(opts.Name)
	if err != nil {
		return nil, err
	}

	result := &ShowResult{Name: opts.Name}

	mode := clipboard.ToClipboard
	if opts.OnScreen {
		mode = clipboard.OnScreen
	}

	if err := env.Guard.Expose(entry.Password, mode); err != nil {
		return nil, err
	}

	if mode == clipboard.ToClipboard {
		result.Copied = true
		result.ClearAfter = env.Guard.ClearAfter()
	}

	return result, nil
}
