package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/PolarWolf314/passage/internal/store"
)

// EditOptions configures the edit workflow.
type EditOptions struct {
	Name string
}

// EditResult contains the outcome of an edit operation.
type EditResult struct {
	Name string
}

// Edit replaces the password of an existing entry.
//
// Returns ErrStorageUninitialized before `passage init`.
// Returns ErrEntryNotFound if the entry does not exist.
func Edit(ctx context.Context, env *Env, opts EditOptions) (*EditResult, error) {
	name, err := store.NormalizeName(opts.Name)
	if err != nil {
		return nil, err
	}

	sess, err := env.open(ctx, openOptions{event: hooks.EditEntry, lock: true})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	if _, err := sess.storage.Get(name); err != nil {
		return nil, err
	}

	password, err := env.Prompt.ReadSecret(fmt.Sprintf("New password for %s: ", name))
	if err != nil {
		return nil, err
	}

	if err := sess.storage.Edit(name, string(password)); err != nil {
		return nil, err
	}
	wipeBytes(password)

	if err := env.save(ctx, hooks.EditEntry, sess); err != nil {
		return nil, err
	}

	return &EditResult{Name: name}, nil
}
