package workflows

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/PolarWolf314/passage/internal/store"
)

// NewEntryOptions configures the new workflow.
type NewEntryOptions struct {
	// Force overwrites an existing entry without asking.
	Force bool
}

// NewEntryResult contains the outcome of a new operation.
type NewEntryResult struct {
	// Name is the entry that was prompted for.
	Name string

	// Overwritten is true when an existing entry was replaced.
	Overwritten bool

	// Declined is true when the user refused to overwrite. Nothing was
	// written.
	Declined bool
}

// NewEntry prompts for an entry name and password and stores them.
//
// When the name already exists the user is asked before overwriting, with
// "no" as the default. Declining leaves the store untouched and is not an
// error. Without a terminal to ask on, an existing entry is only replaced
// with Force.
//
// Returns ErrStorageUninitialized before `passage init`.
// Returns ErrInvalidEntryName for an empty name.
// Returns ErrEntryAlreadyExists when overwriting needs confirmation that
// cannot be given.
func NewEntry(ctx context.Context, env *Env, opts NewEntryOptions) (*NewEntryResult, error) {
	if err := env.requireInitialized(); err != nil {
		return nil, err
	}

	name, err := env.Prompt.ReadLine("Entry> ")
	if err != nil {
		return nil, err
	}
	name, err = store.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	sess, err := env.open(ctx, openOptions{event: hooks.NewEntry, lock: true, create: true})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	result := &NewEntryResult{Name: name}

	if sess.storage.Has(name) {
		ok, err := confirmOverwrite(env, name, opts.Force)
		if err != nil {
			return nil, err
		}
		if !ok {
			env.Log.Infof("Keeping existing entry %q", name)
			result.Declined = true
			return result, nil
		}
		result.Overwritten = true
	}

	password, err := env.Prompt.ReadSecret(fmt.Sprintf("Password for %s: ", name))
	if err != nil {
		return nil, err
	}

	if err := sess.storage.Add(name, store.Entry{Password: string(password)}, true); err != nil {
		return nil, err
	}
	wipeBytes(password)

	if err := env.save(ctx, hooks.NewEntry, sess); err != nil {
		return nil, err
	}

	return result, nil
}

func confirmOverwrite(env *Env, name string, force bool) (bool, error) {
	if force {
		env.Log.Debugf("Overwriting %q (forced)", name)
		return true, nil
	}

	ok, err := env.Prompt.Confirm(fmt.Sprintf("Entry %q already exists. Overwrite?", name))
	if errors.Is(err, kerrors.ErrNotInteractive) {
		return false, fmt.Errorf("entry %q: %w (use --force to overwrite)", name, kerrors.ErrEntryAlreadyExists)
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
