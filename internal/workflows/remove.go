package workflows

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/PolarWolf314/passage/internal/store"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	Name string

	// Yes skips the confirmation prompt.
	Yes bool
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	Name string

	// Declined is true when the user answered no. Nothing was written.
	Declined bool
}

// Remove deletes an entry after confirmation.
//
// Returns ErrStorageUninitialized before `passage init`.
// Returns ErrEntryNotFound if the entry does not exist.
// Returns ErrNotInteractive when confirmation is needed but cannot be asked.
func Remove(ctx context.Context, env *Env, opts RemoveOptions) (*RemoveResult, error) {
	name, err := store.NormalizeName(opts.Name)
	if err != nil {
		return nil, err
	}

	sess, err := env.open(ctx, openOptions{event: hooks.RemoveEntry, lock: true})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	if _, err := sess.storage.Get(name); err != nil {
		return nil, err
	}

	result := &RemoveResult{Name: name}

	if !opts.Yes {
		ok, err := env.Prompt.Confirm(fmt.Sprintf("Remove entry %q?", name))
		if errors.Is(err, kerrors.ErrNotInteractive) {
			return nil, fmt.Errorf("%w (use --yes to remove without asking)", err)
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Declined = true
			return result, nil
		}
	}

	if err := sess.storage.Remove(name); err != nil {
		return nil, err
	}

	if err := env.save(ctx, hooks.RemoveEntry, sess); err != nil {
		return nil, err
	}

	return result, nil
}
